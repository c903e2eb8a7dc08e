package config_test

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codelexer/internal/config"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(memoryfs.New(), "", env(nil))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, []string{"python", "py"}, cfg.LanguageList())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile(config.DefaultFile, []byte(`
languages = ["python", "sh"]

[log]
level = "debug"
format = "json"

[output]
format = "json"
include = ["*.txt"]
`), 0o644))

	cfg, err := config.Load(fsys, "", env(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sh"}, cfg.LanguageList())
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, config.Output{Format: "json", Include: []string{"*.txt"}}, cfg.Output)
}

func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	fsys := memoryfs.New()
	require.NoError(t, fsys.MkdirAll("conf", 0o755))
	require.NoError(t, fsys.WriteFile("conf/lexer.toml", []byte("languages = []\n"), 0o644))

	cfg, err := config.Load(fsys, "conf/lexer.toml", env(nil))
	require.NoError(t, err)

	assert.Empty(t, cfg.LanguageList())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadEnv(t *testing.T) {
	t.Parallel()

	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile(config.DefaultFile, []byte(`languages = ["python"]`), 0o644))

	cfg, err := config.Load(fsys, "", env(map[string]string{config.EnvLanguages: `go 'sh' "py"`}))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sh", "py"}, cfg.LanguageList())

	_, err = config.Load(fsys, "", env(map[string]string{config.EnvLanguages: `go "sh`}))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  error
	}{
		{"unknown key", "langs = [\"py\"]\n", config.ErrUnknownKey},
		{"unknown nested key", "[log]\ncolor = true\n", config.ErrUnknownKey},
		{"bad level", "[log]\nlevel = \"loud\"\n", config.ErrInvalid},
		{"bad format", "[log]\nformat = \"xml\"\n", config.ErrInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := memoryfs.New()
			require.NoError(t, fsys.WriteFile(config.DefaultFile, []byte(tt.data), 0o644))

			_, err := config.Load(fsys, "", env(nil))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), err.Error())
		})
	}

	_, err := config.Load(memoryfs.New(), "missing.toml", env(nil))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile(config.DefaultFile, []byte("languages = [\n"), 0o644))

	_, err = config.Load(fsys, "", env(nil))
	assert.ErrorContains(t, err, config.DefaultFile)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := config.Log{Level: "info", Format: "json"}.Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", "lang", "py")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"lang":"py"`)

	buf.Reset()

	config.Log{Level: "warn", Format: "text"}.Logger(&buf).Warn("fallback")
	assert.Contains(t, buf.String(), "level=WARN msg=fallback")
}
