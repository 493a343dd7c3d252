package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Concurrent())
	assert.Equal(t, DefaultWorkers, cfg.Workers())
	assert.Equal(t, DefaultTimeout, cfg.Timeout())
	assert.Equal(t, "", cfg.Lang())

	v, err := cfg.Get("source.variant")
	require.NoError(t, err)
	assert.Equal(t, "snippets", v)
}

func TestSetGet(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("fetch.workers", "4"))
	require.NoError(t, cfg.Set("fetch.concurrent", "TRUE"))
	require.NoError(t, cfg.Set("fetch.timeout", "1m"))
	require.NoError(t, cfg.Set("language", "de"))
	require.NoError(t, cfg.Set("source.variant", "codes"))

	assert.Equal(t, 4, cfg.Workers())
	assert.True(t, cfg.Concurrent())
	assert.Equal(t, time.Minute, cfg.Timeout())
	assert.Equal(t, "de", cfg.Lang())

	all := cfg.All()
	assert.Equal(t, "1m0s", all["fetch.timeout"])
	assert.Equal(t, "codes", all["source.variant"])
	assert.Len(t, all, len(ValidKeys()))
}

func TestSet_Rejects(t *testing.T) {
	cfg := &Config{}
	tests := []struct{ key, value string }{
		{"language", "fr"},
		{"fetch.workers", "0"},
		{"fetch.workers", "many"},
		{"fetch.concurrent", "yes"},
		{"fetch.timeout", "forever"},
		{"source.variant", "widgets"},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, cfg.Set(tt.key, tt.value), ErrInvalidValue, "%s=%s", tt.key, tt.value)
	}
	assert.ErrorIs(t, cfg.Set("author.name", "x"), ErrUnknownKey)
	assert.False(t, cfg.IsSet("language"))
}

func TestLang_IgnoresUnsupportedSavedValue(t *testing.T) {
	cfg := &Config{Language: "fr"}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "", cfg.Lang())
}

func TestSaveAndLoad_Local(t *testing.T) {
	_, work := isolate(t)

	cfg := &Config{}
	require.NoError(t, cfg.Set("language", "es"))
	require.NoError(t, cfg.SaveScope(ScopeLocal))

	_, err := os.Stat(filepath.Join(work, ".codefind", "config.yaml"))
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, got.Scope())
	assert.Equal(t, "es", got.Lang())
}

func TestLoad_GlobalWhenNoLocal(t *testing.T) {
	home, _ := isolate(t)

	cfg := &Config{}
	require.NoError(t, cfg.Set("source.base", "https://example.com/codes/"))
	require.NoError(t, cfg.SaveScope(ScopeGlobal))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, got.Scope())
	assert.Equal(t, "https://example.com/codes/", got.Source.Base)
	assert.Equal(t, filepath.Join(home, ".codefind", "config.yaml"), got.Path())
}

func TestLoad_Malformed(t *testing.T) {
	_, work := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(work, ".codefind"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".codefind", "config.yaml"), []byte("fetch: [oops"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "malformed config file")
}

func TestLoad_OutOfBounds(t *testing.T) {
	_, work := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(work, ".codefind"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".codefind", "config.yaml"), []byte("fetch:\n  workers: 500\n"), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}
