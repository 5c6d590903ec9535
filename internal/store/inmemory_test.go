package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_SetGetDelete(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	require.NoError(t, s.Delete(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestInMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestInMemoryStore_UpdateCommitsBatch(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	err := s.Update(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return tx.Set(ctx, "b", []byte("2"))
	})
	require.NoError(t, err)

	a, _ := s.Get(ctx, "a")
	b, _ := s.Get(ctx, "b")
	require.Equal(t, []byte("1"), a)
	require.Equal(t, []byte("2"), b)
}

func TestInMemoryStore_UpdateRollsBackOnError(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	require.NoError(t, s.Set(ctx, "a", []byte("old")))

	err := s.Update(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", []byte("new")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	a, _ := s.Get(ctx, "a")
	require.Equal(t, []byte("old"), a)
}
