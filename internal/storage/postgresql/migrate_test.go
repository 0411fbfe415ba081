package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements(t *testing.T) {
	stmts := Statements()

	require.NotEmpty(t, stmts)
	for _, stmt := range stmts {
		assert.NotEmpty(t, stmt)
		assert.NotContains(t, stmt, ";")
	}
	assert.Contains(t, stmts[1], "admin_users")
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("all statements committed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for _, stmt := range Statements() {
			mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		require.NoError(t, Apply(ctx, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed statement rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		stmts := Statements()
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(stmts[0])).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(stmts[1])).WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = Apply(ctx, db)
		assert.ErrorContains(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
