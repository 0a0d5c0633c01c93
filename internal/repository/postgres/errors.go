package postgres

import (
	"errors"

	xerrors "catalog-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// mapConstraintError translates a unique-constraint violation into the
// application conflict error. The unique index is the authoritative guard;
// a create that loses the check-then-insert race still surfaces as a
// conflict rather than an internal error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return xerrors.ErrConflict
	}
	return err
}
