package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessCode is reported for a nil error.
	SuccessCode uint32 = 0

	// InternalCode is reported for every error that is not rooted in a
	// registered error. Such errors are implementation details and their
	// message is hidden unless running in debug mode.
	InternalCode uint32 = 1

	internalLog = "internal error"
)

// Code returns the code of the registered error that err is rooted in.
// SuccessCode is returned for nil and InternalCode for an error that does
// not wrap a registered one.
func Code(err error) uint32 {
	if isNilErr(err) {
		return SuccessCode
	}
	for {
		if c, ok := err.(interface{ Code() uint32 }); ok {
			return c.Code()
		}
		c, ok := err.(causer)
		if !ok {
			return InternalCode
		}
		err = c.Cause()
	}
}

// Info returns the code and message that can be shown to a user of the
// application. Messages of internal errors are replaced with a generic one
// unless debug is set. In debug mode the message carries the stack trace.
func Info(err error, debug bool) (uint32, string) {
	code := Code(err)
	switch {
	case code == SuccessCode:
		return code, ""
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == InternalCode:
		return code, internalLog
	default:
		return code, err.Error()
	}
}

// Redact replaces internal errors and panics with a generic error that
// carries no details. Errors rooted in a registered error other than
// ErrPanic are returned unchanged. Nothing is replaced in debug mode.
func Redact(err error, debug bool) error {
	if debug || err == nil {
		return err
	}
	if ErrPanic.Is(err) || Code(err) == InternalCode {
		return errors.New(internalLog)
	}
	return err
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
