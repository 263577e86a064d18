package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeContext(t *testing.T, ctx context.Context, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func startWatch(t *testing.T, path string, onChange func() error) (cancel func() error) {
	t.Helper()
	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	require.NoError(t, w.Add(filepath.Dir(path)))

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, w, path, 50*time.Millisecond, slog.New(slog.DiscardHandler), onChange)
	}()
	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("watchLoop did not return")
			return nil
		}
	}
}

func TestWatchLoopDebouncesChanges(t *testing.T) {
	path := writeLayout(t, "box.yaml", boxYAML)
	calls := make(chan struct{}, 10)
	cancel := startWatch(t, path, func() error {
		calls <- struct{}{}
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte(boxYAML), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(boxYAML), 0o644))
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no reload after the file changed")
	}

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, calls, "changes were not coalesced, or another file triggered a reload")

	assert.NoError(t, cancel())
}

func TestWatchLoopStopsOnError(t *testing.T) {
	path := writeLayout(t, "box.yaml", boxYAML)
	boom := errors.New("boom")
	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(filepath.Dir(path)))

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(context.Background(), w, path, time.Millisecond, slog.New(slog.DiscardHandler), func() error { return boom })
	}()
	require.NoError(t, os.WriteFile(path, []byte(boxYAML), 0o644))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop did not return")
	}
}

func TestWatchCommand(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeLayout(t, "box.yaml", boxYAML)
	out, _, err := executeContext(t, ctx, "watch", "--clear=false", path)
	require.NoError(t, err)
	assert.Equal(t, "┌──────────┐\n│hi        │\n└──────────┘\n", out)

	out, _, err = executeContext(t, ctx, "watch", path)
	require.NoError(t, err)
	assert.Equal(t, clearScreen, out[:len(clearScreen)])

	bad := writeLayout(t, "bad.yaml", "root: {type: label}")
	out, stderr, err := executeContext(t, ctx, "watch", bad)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "must be a frame")
}
