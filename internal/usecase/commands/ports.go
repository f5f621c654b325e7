package commands

import (
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/usecase/shared"
)

// translateNotFound turns a repository miss into the caller-facing sentinel.
func translateNotFound(err error, notFound *errs.Error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithStack(notFound)
	}
	return err
}

func requireRole(actor shared.Actor, allowed ...func(shared.Actor) bool) error {
	for _, ok := range allowed {
		if ok(actor) {
			return nil
		}
	}
	return errs.WithStack(errs.ErrUnauthorized)
}
