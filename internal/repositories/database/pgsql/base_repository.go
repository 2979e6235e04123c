package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository holds the pool shared by the Postgres repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// WithTx runs fn inside a transaction, committing when it returns nil and
// rolling back otherwise.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() {
		// ErrTxClosed after a successful commit
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// insertError maps a failed insert of what to ErrDuplicate on a primary key
// clash and to a 500 AppError otherwise.
func insertError(what string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.NewAppError(http.StatusConflict, what+" already exists", apperrors.ErrDuplicate)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert "+what, err)
}
