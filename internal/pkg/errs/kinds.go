package errs

// Kind is the caller-facing error taxonomy. Every business rule failure
// carries exactly one Kind and a stable Code the client can render.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindStateConflict       Kind = "STATE_CONFLICT"
	KindInsufficientBalance Kind = "INSUFFICIENT_BALANCE"
	KindNotFound            Kind = "NOT_FOUND"
	KindUnauthorized        Kind = "UNAUTHORIZED"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Define declares a sentinel. Callers wrap it with Wrap/Wrapf/WithStack
// so errors.Is keeps working through the chain.
func Define(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func KindOf(err error) (Kind, bool) {
	if e, ok := AsError(err); ok {
		return e.Kind, true
	}
	return "", false
}

func AsError(err error) (*Error, bool) {
	var e *Error
	if err != nil && As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Shared sentinels used across aggregates.
var (
	ErrInvalidInput = Define(KindValidation, "INVALID_INPUT", "invalid input")
	ErrUnauthorized = Define(KindUnauthorized, "UNAUTHORIZED", "actor is not allowed to perform this operation")
	ErrNotFound     = Define(KindNotFound, "NOT_FOUND", "resource not found")
)
