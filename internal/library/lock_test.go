package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPath(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	a, err := LockPath("/media/movies")
	require.NoError(t, err)
	b, err := LockPath("/media/movies/")
	require.NoError(t, err)
	c, err := LockPath("/media/tv")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, ".lock", filepath.Ext(a))
}

func TestLock_Exclusive(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	root := t.TempDir()

	held, err := Lock(context.Background(), root)
	require.NoError(t, err)

	_, err = TryLock(root)
	assert.ErrorIs(t, err, ErrLocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = Lock(ctx, root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	require.NoError(t, held.Unlock())

	again, err := TryLock(root)
	require.NoError(t, err)
	assert.Equal(t, held.Path(), again.Path())
	require.NoError(t, again.Unlock())
}

func TestLock_IndependentRoots(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	a, err := TryLock(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = a.Unlock() }()

	b, err := TryLock(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, b.Unlock())
}
