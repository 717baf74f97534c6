package server

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer makes log capture safe against the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newCaptureLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), buf
}

func TestResourceWatcher_WarnsWhenOverrideRemoved(t *testing.T) {
	dir := t.TempDir()
	sound := filepath.Join(dir, "custom.aiff")
	require.NoError(t, os.WriteFile(sound, []byte("FORM"), 0644))

	logger, logs := newCaptureLogger()
	rw, err := NewResourceWatcher(logger, sound)
	require.NoError(t, err)

	rw.Start()
	defer rw.Stop()

	require.NoError(t, os.Remove(sound))

	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "resource disappeared")
	}, 2*time.Second, 10*time.Millisecond, "removal must be logged as a warning")
	assert.Contains(t, logs.String(), "custom.aiff")
}

func TestResourceWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	sound := filepath.Join(dir, "custom.aiff")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(sound, []byte("FORM"), 0644))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))

	logger, logs := newCaptureLogger()
	rw, err := NewResourceWatcher(logger, sound)
	require.NoError(t, err)

	rw.Start()
	defer rw.Stop()

	require.NoError(t, os.Remove(other))

	// Give the event time to arrive before asserting it was dropped.
	time.Sleep(200 * time.Millisecond)
	assert.NotContains(t, logs.String(), "other.txt")
}

func TestResourceWatcher_StopReturnsCleanly(t *testing.T) {
	sound := filepath.Join(t.TempDir(), "custom.aiff")
	require.NoError(t, os.WriteFile(sound, []byte("FORM"), 0644))

	rw, err := NewResourceWatcher(nil, sound)
	require.NoError(t, err)

	rw.Start()

	done := make(chan struct{})
	go func() {
		rw.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	// Stop again is a no-op.
	rw.Stop()
}

func TestResourceWatcher_SkipsEmptyPaths(t *testing.T) {
	rw, err := NewResourceWatcher(nil, "", "")
	require.NoError(t, err)

	rw.Start()
	rw.Stop()
}
