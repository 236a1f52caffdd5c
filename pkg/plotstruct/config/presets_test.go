package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dark.json", `{"layout":{"plot_bgcolor":"#000"},"config":{"displaylogo":false}}`)
	writeFile(t, dir, "minimal.yaml", "trace:\n  marker_size: 4\n")
	writeFile(t, dir, "broken.json", `{"layout":`)
	writeFile(t, dir, "wrong.yml", "layout: [1, 2]\n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	core, logs := observer.New(zap.WarnLevel)
	store, err := LoadPresets(zap.New(core), dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)

	assert.Equal(t, []string{"dark.json", "minimal.yaml"}, store.Names())
	assert.Equal(t, 2, logs.FilterMessage("Skipping preset file").Len())

	dark, ok := store.Preset("dark.json")
	require.True(t, ok)
	assert.Equal(t, "#000", dark.Layout["plot_bgcolor"])
	assert.Equal(t, false, dark.Config["displaylogo"])
	assert.Nil(t, dark.Trace)

	minimal, ok := store.Preset("minimal.yaml")
	require.True(t, ok)
	assert.Nil(t, minimal.Layout)
	assert.Equal(t, 4, minimal.Trace["marker_size"])

	_, ok = store.Preset("Dark.json")
	assert.False(t, ok)
}

func TestLoadPresets_FirstWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFile(t, first, "shared.json", `{"layout":{"title_text":"first"}}`)
	writeFile(t, second, "shared.json", `{"layout":{"title_text":"second"}}`)

	store, err := LoadPresets(nil, first, second)
	require.NoError(t, err)

	p, ok := store.Preset("shared.json")
	require.True(t, ok)
	assert.Equal(t, "first", p.Layout["title_text"])
	assert.Len(t, store.Names(), 1)
}

func TestLoadPresets_NoDirs(t *testing.T) {
	store, err := LoadPresets(nil)
	require.NoError(t, err)
	assert.Empty(t, store.Names())

	var nilStore *PresetStore
	_, ok := nilStore.Preset("x")
	assert.False(t, ok)
}

func TestLoadPalettes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palettes.yaml")
	writeFile(t, dir, "palettes.yaml", "warm:\n  - '#FF8800'\n  - '#f00'\n  - not-a-colour\ncool: ['#0000ff']\n")

	core, logs := observer.New(zap.WarnLevel)
	store, err := LoadPalettes(path, zap.New(core))
	require.NoError(t, err)

	warm, ok := store.Palette("warm")
	require.True(t, ok)
	assert.Equal(t, []string{"#ff8800", "#ff0000"}, warm)
	assert.Equal(t, 1, logs.FilterMessage("Dropping invalid palette colour").Len())

	warm[0] = "#123456"
	again, _ := store.Palette("warm")
	assert.Equal(t, "#ff8800", again[0])

	names := []string{}
	for _, p := range store.Palettes() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"cool", "warm"}, names)

	_, err = LoadPalettes(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPalettes_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.json", `{"mono":["#222222","#DDDDDD"]}`)

	store, err := LoadPalettes(filepath.Join(dir, "p.json"), nil)
	require.NoError(t, err)
	mono, ok := store.Palette("mono")
	require.True(t, ok)
	assert.Equal(t, []string{"#222222", "#dddddd"}, mono)
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ABCDEF", "#abcdef", false},
		{" #abc ", "#aabbcc", false},
		{"red", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
