// Package infra holds what the storage adapters share: the error taxonomy
// use cases branch on without importing a driver.
package infra

import (
	"log/slog"

	"roadside-marketplace/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)

type RepositoryError struct {
	Kind  RepositoryErrorKind
	op    string
	cause error
}

func (e *RepositoryError) Error() string {
	if e.cause == nil {
		return string(e.Kind) + ": " + e.op
	}
	return string(e.Kind) + ": " + e.op + ": " + e.cause.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.cause
}

// WrapRepoErr tags a storage failure with a kind, DB_FAILURE when none is
// given. Only DB_FAILURE is logged; the other kinds are outcomes a use case
// is expected to translate.
func WrapRepoErr(op string, cause error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if k == KindDBFailure {
		slog.Error("repository failure", "op", op, "error", cause)
	}
	return &RepositoryError{Kind: k, op: op, cause: errs.Wrap(cause, op)}
}

// KindOf returns the kind of the outermost RepositoryError in err's chain.
func KindOf(err error) (RepositoryErrorKind, bool) {
	var re *RepositoryError
	if !errs.As(err, &re) {
		return "", false
	}
	return re.Kind, true
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
