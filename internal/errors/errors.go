package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid settings, missing token).
	ExitUser = 1

	// ExitSystem indicates a system-related error (install, I/O, serialization).
	ExitSystem = 2
)

// Constructors re-exported from github.com/cockroachdb/errors so callers only
// need one errors import.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
	Mark  = crdb.Mark
)

// Error kinds. They are attached to errors with Mark and never returned bare.
var (
	// ErrValidation marks missing or malformed settings.
	ErrValidation = crdb.New("validation error")

	// ErrInstall marks a failed package lookup or installation.
	ErrInstall = crdb.New("install error")

	// ErrIO marks working directory, settings store, and runtime lookup failures.
	ErrIO = crdb.New("io error")

	// ErrSchema marks a failure to serialize the settings schema.
	ErrSchema = crdb.New("schema error")
)

// Kind names the class of a failure.
type Kind string

// Known kinds, in the order KindOf checks them.
const (
	KindValidation Kind = "validation"
	KindInstall    Kind = "install"
	KindIO         Kind = "io"
	KindSchema     Kind = "schema"
	KindUnknown    Kind = "unknown"
)

// Validation marks err as a validation failure. A nil err stays nil.
func Validation(err error) error { return mark(err, ErrValidation) }

// Install marks err as an install failure. A nil err stays nil.
func Install(err error) error { return mark(err, ErrInstall) }

// IO marks err as an I/O failure. A nil err stays nil.
func IO(err error) error { return mark(err, ErrIO) }

// Schema marks err as a schema serialization failure. A nil err stays nil.
func Schema(err error) error { return mark(err, ErrSchema) }

func mark(err, kind error) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(err, kind)
}

// KindOf reports the kind attached to err, or KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case crdb.Is(err, ErrValidation):
		return KindValidation
	case crdb.Is(err, ErrInstall):
		return KindInstall
	case crdb.Is(err, ErrIO):
		return KindIO
	case crdb.Is(err, ErrSchema):
		return KindSchema
	default:
		return KindUnknown
	}
}

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Check the config file passed with --config or DOMCP_CONFIG",
	}
}

// ForCLI converts err into an ExitError chosen by its kind. Errors that are
// already ExitErrors are returned unchanged. A nil err stays nil.
func ForCLI(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return err
	}

	switch KindOf(err) {
	case KindValidation:
		return NewUserError(err, `Set "digitalocean_api_token" in the context server settings`)
	case KindInstall:
		return NewSystemError(err, "Check that npm is installed and the package registry is reachable")
	case KindIO:
		return NewSystemError(err, "Check the working directory, the --settings path, and that node is on PATH")
	case KindSchema:
		return NewSystemError(err, "")
	default:
		return NewExitError(err, ExitSystem)
	}
}

// ExitCode returns the exit code carried by err. Errors without an ExitError
// in their chain map to ExitSystem; nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
