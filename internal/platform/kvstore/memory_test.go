package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Incr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	n, err := s.Incr(ctx, "counter", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.Incr(ctx, "counter", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
