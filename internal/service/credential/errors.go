package credential

import "errors"

// Kind classifies a credential error for the transport layer
type Kind int

const (
	KindValidationFailed Kind = iota + 1
	KindAlreadyExists
	KindAccountNotFound
	KindKeyNotSet
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation_failed"
	case KindAlreadyExists:
		return "already_exists"
	case KindAccountNotFound:
		return "account_not_found"
	case KindKeyNotSet:
		return "key_not_set"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by Repository. Store errors never
// cross the repository boundary unwrapped.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidationFailed = &Error{Kind: KindValidationFailed}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists}
	ErrAccountNotFound  = &Error{Kind: KindAccountNotFound}
	ErrKeyNotSet        = &Error{Kind: KindKeyNotSet}
	ErrStorageFailure   = &Error{Kind: KindStorageFailure}
)

// KindOf returns the kind of err, or 0 when err is nil or not a credential error
func KindOf(err error) Kind {
	var credErr *Error
	if errors.As(err, &credErr) {
		return credErr.Kind
	}
	return 0
}
