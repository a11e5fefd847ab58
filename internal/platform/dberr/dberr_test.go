// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/dberr"
)

/*
TestWrap_Nil verifies that a nil error stays nil.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Item"))
}

/*
TestWrap_NoRows verifies the pgx.ErrNoRows to 404 mapping, with and without
a named resource. Wrapped sentinels must still be recognized.
*/
func TestWrap_NoRows(t *testing.T) {
	t.Run("NamedResource", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "Item")

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
		assert.Equal(t, "Item not found", appError.Message)
	})

	t.Run("UnnamedResource", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "")
		assert.ErrorIs(t, err, dberr.ErrNotFound)
	})

	t.Run("WrappedSentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("query_user: %w", pgx.ErrNoRows)
		err := dberr.Wrap(wrapped, "User")
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestWrap_UniqueViolation verifies the SQLSTATE 23505 to Conflict mapping.
*/
func TestWrap_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	err := dberr.Wrap(pgErr, "User")

	require.True(t, apperr.IsConflict(err))
	appError := apperr.As(err)
	assert.Equal(t, "User already exists", appError.Message)
	assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
}

/*
TestWrap_ForeignKeyViolation verifies that a missing referenced row maps to
404 rather than leaking constraint details.
*/
func TestWrap_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	err := dberr.Wrap(pgErr, "Item")

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestWrap_Unknown verifies that any other database error becomes an opaque 500
with the cause preserved for logging.
*/
func TestWrap_Unknown(t *testing.T) {
	cause := errors.New("connection reset by peer")

	err := dberr.Wrap(cause, "Item")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusInternalServerError, appError.HTTPStatus)
	assert.Equal(t, "An unexpected error occurred", appError.Message)
	assert.ErrorIs(t, err, cause)
}
