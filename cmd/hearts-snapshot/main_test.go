package main

import (
	"os"
	"testing"

	"floatinghearts/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	config := game.DefaultConfig()
	config.ScreenWidth, config.ScreenHeight = 120, 90
	config.Seed = 1

	written, err := render(config, 10, 4, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame-0004.png", "frame-0008.png"}, names)
}

func TestRenderReportsWriteErrors(t *testing.T) {
	config := game.DefaultConfig()
	config.ScreenWidth, config.ScreenHeight = 40, 30

	_, err := render(config, 5, 1, "/nonexistent/dir/for/snapshots")
	assert.Error(t, err)
}
