package session

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/pkg/redis"
)

const testEncryptionKey = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewRedisStore_KeyValidation(t *testing.T) {
	_, err := NewRedisStore("not-hex", "default")
	require.Error(t, err)

	_, err = NewRedisStore("abcd", "default")
	require.Error(t, err)

	store, err := NewRedisStore(testEncryptionKey, "")
	require.NoError(t, err)
	require.Equal(t, "admin-token:default", store.key)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewRedisStore(testEncryptionKey, "alice")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)

	require.NoError(t, store.Save(ctx, "header.payload.signature"))

	// Token must not be stored in plaintext.
	raw, err := mr.Get("admin-token:alice")
	require.NoError(t, err)
	require.NotContains(t, raw, "payload")

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "header.payload.signature", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestRedisStore_ProfilesAreIsolated(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	alice, err := NewRedisStore(testEncryptionKey, "alice")
	require.NoError(t, err)
	bob, err := NewRedisStore(testEncryptionKey, "bob")
	require.NoError(t, err)

	require.NoError(t, alice.Save(ctx, "alice-token"))
	_, err = bob.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestRedisStore_CorruptCiphertext(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewRedisStore(testEncryptionKey, "alice")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, mr.Set("admin-token:alice", "zzzz"))
	_, err = store.Load(ctx)
	require.Error(t, err)

	require.NoError(t, mr.Set("admin-token:alice", strings.Repeat("ab", 4)))
	_, err = store.Load(ctx)
	require.Error(t, err)
}
