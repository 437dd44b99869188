package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/decafdrag/drag"
)

const layout = `
window:
  title: Test
  width: 640
  height: 480
events: touch
panels:
  - id: sidebar
    title: Sidebar
    x: 5
    y: 6
    width: 100
    height: 200
    handle: sidebar-title
    lower: {x: 0, y: 0}
    upper: {x: 300, y: 200}
  - id: popup
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(layout))
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	require.Len(t, cfg.Panels, 2)
	assert.Equal(t, drag.TouchEvents, cfg.EventNames())

	p, err := cfg.Panel("sidebar")
	require.NoError(t, err)
	opts := cfg.DragOptions(p)
	assert.Equal(t, "sidebar-title", opts.HandleID)
	require.NotNil(t, opts.Lower)
	require.NotNil(t, opts.Upper)
	assert.Equal(t, drag.Pt(300, 200), *opts.Upper)

	popup, err := cfg.Panel("popup")
	require.NoError(t, err)
	lower, upper := popup.Bounds()
	assert.Nil(t, lower)
	assert.Nil(t, upper)

	_, err = cfg.Panel("missing")
	assert.True(t, errors.Is(err, ErrNoPanel))
}

func TestParseKeepsDefaultWindow(t *testing.T) {
	cfg, err := Parse([]byte("panels: [{id: a}]"))
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, drag.MouseEvents, cfg.EventNames())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Window: Window{Width: 0, Height: 10},
		Events: "pen",
		Panels: []Panel{
			{ID: "a"},
			{ID: "a", Width: -1},
			{},
			{ID: "b", Handle: "b"},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, Errors(err), 6)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Panels, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("window: {width: -1, height: 1}"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
