package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := fakeTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM class_bookings"))
	assert.Equal(t, "insert", operation("  INSERT INTO users"))
	assert.Equal(t, "unknown", operation(""))
}

func TestWrapUnwrap(t *testing.T) {
	raw := &sql.DB{}
	wrapped := Wrap(raw, nil)
	assert.Same(t, raw, wrapped.Unwrap())
}
