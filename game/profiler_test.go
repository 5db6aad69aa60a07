package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := NewProfiler(dir)
	require.NoError(t, err)
	p.captureDuration = 10 * time.Millisecond

	require.NoError(t, p.CaptureProfile("test"))
	p.Wait()
	assert.False(t, p.IsProfiling())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "test.cpu.prof")
}

func TestProfilerCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir())
	require.NoError(t, err)
	p.captureDuration = 10 * time.Millisecond

	require.NoError(t, p.CaptureProfile("first"))
	p.Wait()

	assert.ErrorIs(t, p.CaptureProfile("second"), ErrProfileCooldown)
}

func TestNewProfilerBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewProfiler(filepath.Join(file, "profiles"))
	assert.Error(t, err)
}
