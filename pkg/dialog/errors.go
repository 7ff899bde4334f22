package dialog

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// ErrorCode tells callers what kind of failure an Error is
type ErrorCode int

const (
	// AlreadyConsumed means a builder was used after its dialog had been shown
	AlreadyConsumed ErrorCode = iota + 1
	// InvalidEncoding means a path picked by the user is not valid UTF-8
	InvalidEncoding
	// NativePanic means the native layer panicked during the operation
	NativePanic
	// InvalidArgument means a value outside a closed set was passed in
	InvalidArgument
	// BackendFailure means the dialog backend returned an error
	BackendFailure
)

func (c ErrorCode) String() string {
	switch c {
	case AlreadyConsumed:
		return "already consumed"
	case InvalidEncoding:
		return "invalid encoding"
	case NativePanic:
		return "native panic"
	case InvalidArgument:
		return "invalid argument"
	case BackendFailure:
		return "backend failure"
	}
	return "unknown"
}

// Sentinels for errors.Is. Any Error matches the sentinel with the same code.
var (
	ErrAlreadyConsumed = &Error{Code: AlreadyConsumed, Message: AlreadyConsumed.String()}
	ErrInvalidEncoding = &Error{Code: InvalidEncoding, Message: InvalidEncoding.String()}
	ErrNativePanic     = &Error{Code: NativePanic, Message: NativePanic.String()}
	ErrInvalidArgument = &Error{Code: InvalidArgument, Message: InvalidArgument.String()}
	ErrBackendFailure  = &Error{Code: BackendFailure, Message: BackendFailure.String()}
)

// Error is returned by every failing dialog operation. User cancellation is
// never an Error.
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type Error struct {
	Code    ErrorCode
	Message string
	// Cause is the underlying error, if any. For NativePanic it is a
	// *errors.Error from go-errors carrying the stack of the panic.
	Cause error
	frame xerrors.Frame
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Message)
	e.frame.Format(p)
	return e.Cause
}

// Format is a function
func (e *Error) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e *Error) Error() string {
	return fmt.Sprint(e)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// HasErrorCode reports whether err is, or wraps, an Error with the given code
func HasErrorCode(err error, code ErrorCode) bool {
	var dialogErr *Error
	if xerrors.As(err, &dialogErr) {
		return dialogErr.Code == code
	}
	return false
}

// PanicStack returns the stack trace of the panic behind a NativePanic error,
// or the empty string
func PanicStack(err error) string {
	var stackErr *errors.Error
	if HasErrorCode(err, NativePanic) && xerrors.As(err, &stackErr) {
		return stackErr.ErrorStack()
	}
	return ""
}
