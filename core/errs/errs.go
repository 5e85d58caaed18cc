package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindUnknown      Kind = ""
	KindConfigCopy   Kind = "ConfigCopyError"
	KindConfigImport Kind = "ConfigImportError"
	KindEmptyFileSet Kind = "EmptyFileSetError"
	KindInvalidName  Kind = "InvalidNameError"
	KindArchiveWrite Kind = "ArchiveWriteError"
	KindPattern      Kind = "PatternError"
)

// Error is a terminal failure of a run. Msg is what the user is shown, Err is
// the underlying cause, if any.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Wrapf(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, errs.New(kind, ""))
// works as a kind check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user facing message for err. Errors of a known kind
// only show their own message, the cause is left for debug logs.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
