/*
Package errors implements custom error interfaces for the vault.

The idea is to reuse as many errors from this package as possible and define custom package
errors when absolutely necessary. The escrow vault rejections (ErrAlreadyInitialized,
ErrNotInitialized, ErrTimelockNotExpired, ErrTransferFailed) live here next to the generic
ones, so every rejection carries a distinct code.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Wrap(ErrXyz, "...") or Wrapf.
Code(err) returns the code of the registered root, which allows to distinguish
types of errors on the client side and act accordingly.

There is also support for stacktraces. Please ensure you create the custom error using
errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error

	%s is just the error message
	%+v is the full stack trace
*/
package errors
