// Package errors provides the structured error type shared by prt packages.
// The Kind of an error decides how it is reported to the user.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalid is a local precondition failure; nothing was sent.
	KindInvalid
	// KindValidation is a remote rejection of the request payload (HTTP 422).
	KindValidation
	// KindNotFound is a missing remote resource (HTTP 404).
	KindNotFound
	// KindAuth is a missing or rejected credential.
	KindAuth
	// KindAPI covers every other remote or transport failure.
	KindAPI
	KindIO
	KindConfig
	KindGit
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid input"
	case KindValidation:
		return "validation failed"
	case KindNotFound:
		return "not found"
	case KindAuth:
		return "authentication error"
	case KindAPI:
		return "api error"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindGit:
		return "git error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for prt.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetKind returns the Kind of the outermost structured error in the chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindUnknown {
			return GetKind(e.Err)
		}
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text of err: the context and underlying
// message of the innermost structured error, without operation prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	inner := Message(e.Err)
	if e.Context != "" && inner != "" {
		return e.Context + ": " + inner
	}
	if e.Context != "" {
		return e.Context
	}
	return inner
}

// Invalid reports a local precondition failure.
func Invalid(op Op, reason string) error {
	return E(op, KindInvalid, reason)
}

// MissingCredential reports that an authenticated call was attempted without a token.
func MissingCredential(op Op) error {
	return E(op, KindAuth, "no GitHub credential configured")
}
