package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestLoadSave_RoundTrip(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	in := []snapshot{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	require.NoError(t, Save(ctx, kv, "snap", in))

	out, err := Load[[]snapshot](ctx, kv, "snap")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_AbsentKey_ReturnsZeroValue(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))

	out, err := Load[[]snapshot](context.Background(), kv, "absent")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestLoad_CorruptBlob_ReturnsZeroValueAndSentinel(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "snap", []byte(`{not json`)))

	out, err := Load[[]snapshot](ctx, kv, "snap")
	require.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.Nil(t, out)
}

func TestSave_OverwritesWholeSnapshot(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, Save(ctx, kv, "snap", []snapshot{{ID: 1}, {ID: 2}}))
	require.NoError(t, Save(ctx, kv, "snap", []snapshot{{ID: 3}}))

	out, err := Load[[]snapshot](ctx, kv, "snap")
	require.NoError(t, err)
	assert.Equal(t, []snapshot{{ID: 3}}, out)
}

func TestClear_MakesKeyAbsent(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, Save(ctx, kv, "snap", snapshot{ID: 9}))
	require.NoError(t, Clear(ctx, kv, "snap"))

	raw, err := kv.Get(ctx, "snap")
	require.NoError(t, err)
	assert.Nil(t, raw)
}
