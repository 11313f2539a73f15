package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Locale = "en"
	cfg.Dictionaries = []string{"user.jsonl"}
	cfg.Voice.Rate = 80
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `
locale: en
labels:
  en:
    upper: capital
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 100, cfg.Voice.Volume)
	assert.Equal(t, "capital", cfg.Labels["en"].Upper)
	assert.Equal(t, reading.JapaneseLabels, cfg.Labels["ja"])
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("voice:\n  pitch: 150\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "voice.pitch")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("locale: [unclosed"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("locale: en\n"), 0644))
	cfg, err = LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestResolveDictionaries(t *testing.T) {
	cfg := &Config{Dictionaries: []string{"user.jsonl", "/abs/extra.db"}}
	assert.Equal(t,
		[]string{filepath.Join("/cfg", "user.jsonl"), "/abs/extra.db"},
		cfg.ResolveDictionaries("/cfg"),
	)
}
