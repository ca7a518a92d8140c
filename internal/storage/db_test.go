package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv := NewSQLiteKV(db)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestOpen_IsIdempotentAcrossReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteKV(db).Set(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db2, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	v, err := NewSQLiteKV(db2).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestInstallID_GeneratedOnceAndStable(t *testing.T) {
	ctx := context.Background()
	kv := NewSQLiteKV(setupDB(t))

	first, err := InstallID(ctx, kv)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err, "install id must be a uuid")

	second, err := InstallID(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
