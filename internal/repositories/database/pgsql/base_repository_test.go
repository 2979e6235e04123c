package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestInsertError(t *testing.T) {
	dup := insertError("invoice 1", &pgconn.PgError{Code: uniqueViolation})
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)

	other := insertError("invoice 1", &pgconn.PgError{Code: "23503"})
	assert.NotErrorIs(t, other, apperrors.ErrDuplicate)

	var appErr *apperrors.AppError
	if assert.True(t, errors.As(other, &appErr)) {
		assert.Equal(t, 500, appErr.Code)
	}
}
