package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/incarcnet/pipeline"
)

func TestWatch_RerunsAfterWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))
	other := filepath.Join(dir, "unrelated.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	ran := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- pipeline.Watch(ctx, path, 50*time.Millisecond, zaptest.NewLogger(t), func(context.Context) error {
			calls.Add(1)
			ran <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o600))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	}

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("watch callback not invoked")
	}

	// The burst of writes settles into a single run.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatch_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- pipeline.Watch(ctx, path, 50*time.Millisecond, zaptest.NewLogger(t), func(context.Context) error {
			ran <- struct{}{}
			return nil
		})
	}()
	time.Sleep(100 * time.Millisecond)

	// Moving the input away is not a change worth re-running for.
	moved := filepath.Join(dir, "moved.csv")
	require.NoError(t, os.Rename(path, moved))
	select {
	case <-ran:
		t.Fatal("re-run after the input was moved away")
	case <-time.After(300 * time.Millisecond):
	}

	// Renaming a fresh file onto the input path is picked up.
	tmp := filepath.Join(dir, "input.csv.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("v2"), 0o600))
	require.NoError(t, os.Rename(tmp, path))
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("atomic replace not picked up")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := pipeline.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "in.csv"), 0, nil,
		func(context.Context) error { return nil })
	assert.Error(t, err)
}
