package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun-dev/maumdiary/internal/common"
	"github.com/haeun-dev/maumdiary/internal/diary"
	"github.com/haeun-dev/maumdiary/internal/storage"
)

// End-to-end walk through both stores sharing one database: signup,
// duplicate signup, login, write an entry, delete the account, and check
// the cascade emptied the diary.
func TestScenario_SignupLoginWriteDeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	diaries, err := diary.NewStore(ctx, storage.NewSQLiteKV(db), testLogger())
	require.NoError(t, err)
	accounts, err := NewStore(ctx, db, diaries, testLogger())
	require.NoError(t, err)

	require.NoError(t, accounts.SignUp(ctx, "ann", "pw1", "Ann"))
	require.ErrorIs(t, accounts.SignUp(ctx, "ann", "pw2", "Ann2"), common.ErrDuplicateUsername)

	require.NoError(t, accounts.Login(ctx, "ann", "pw1"))
	sess := accounts.Current()
	require.NotNil(t, sess)
	assert.Equal(t, "Ann", sess.Nickname)

	entry, err := diaries.Add(ctx, sess.ID, "hello", diary.EmotionHappy)
	require.NoError(t, err)
	assert.Equal(t, "hello", entry.Content)
	assert.Equal(t, diary.EmotionHappy, entry.Emotion)

	require.Len(t, diaries.ForOwner(sess.ID), 1)

	require.NoError(t, accounts.DeleteUser(ctx))
	assert.Empty(t, diaries.ForOwner(sess.ID))
}
