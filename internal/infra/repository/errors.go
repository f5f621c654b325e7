package repository

import (
	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/pgconv"
)

// wrapErr classifies a pgx error by SQLSTATE so use cases can react to
// constraint outcomes without importing pgx.
func wrapErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.CodeForeignKeyViolation:
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	case pgconv.CodeCheckViolation:
		return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
