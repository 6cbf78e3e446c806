package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/erca/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSources(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_sources`).Scan(&n)
	}))
	return n
}

func insertSource(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO catalog_sources (id, name, format, raw, imported_at)
		VALUES (?, ?, 'json', '{}', 'now')`, id, "name-"+id)
	return err
}

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func TestWithinTx_Commits(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSource(ctx, tx, "a")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countSources(t, uow))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSource(ctx, tx, "a"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countSources(t, uow))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSource(ctx, tx, "a")
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, countSources(t, uow))
}
