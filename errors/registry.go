package errors

import "fmt"

// Root errors of the application. Every error returned by a handler should
// wrap one of them, so that callers can test it with Is and map it to a
// stable code.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")

	// ErrInvalidMsg is returned for a message that cannot be handled.
	ErrInvalidMsg = Register(4, "invalid message")

	// ErrInvalidModel is returned for data that cannot be persisted.
	ErrInvalidModel = Register(5, "invalid model")

	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that a correct program never reaches.
	ErrHuman = Register(7, "coding error")

	ErrEmpty              = Register(9, "value is empty")
	ErrInvalidState       = Register(10, "invalid state")
	ErrInvalidType        = Register(11, "invalid type")
	ErrInsufficientAmount = Register(12, "insufficient amount")
	ErrInvalidAmount      = Register(13, "invalid amount")
	ErrInvalidInput       = Register(14, "invalid input")
	ErrDatabase           = Register(15, "database error")
	ErrOverflow           = Register(16, "value overflow")

	// ErrAlreadyInitialized is returned when a funded vault is funded
	// again.
	ErrAlreadyInitialized = Register(20, "already initialized")

	// ErrNotInitialized is returned when an empty vault is released or
	// queried.
	ErrNotInitialized = Register(21, "not initialized")

	// ErrTimelockNotExpired is returned when someone other than the owner
	// releases a vault before its unlock time.
	ErrTimelockNotExpired = Register(22, "timelock not expired")

	// ErrTransferFailed is returned when the asset ledger refused a
	// transfer. Nothing is committed and the call can be retried.
	ErrTransferFailed = Register(23, "transfer failed")

	// ErrPanic wraps a recovered panic. Its message is redacted outside of
	// debug mode.
	ErrPanic = Register(111222, "panic")
)

// registry maps every code in use to its error. Code 1 is reserved for
// errors that are not rooted in a registered one.
var registry = map[uint32]*Error{
	InternalCode: {code: InternalCode, desc: internalLog},
}

// Register declares a new root error. It panics if code is already taken.
// Call it only from package level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d already registered as %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a registered root error.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered code.
func (e Error) Code() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrapf(e, format, args...)
}

// Is returns true if err is e or wraps e. A nil *Error matches only nil
// errors, including typed nil pointers.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}
