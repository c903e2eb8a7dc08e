// Package config loads command line settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/shlex"

	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

const (
	// DefaultFile is read when present and no file is named explicitly.
	DefaultFile = "codelexer.toml"
	// EnvLanguages overrides the language list, shell-quoted and blank separated.
	EnvLanguages = "CODELEXER_LANGUAGES"
)

// Config is the effective configuration of a run.
type Config struct {
	// Languages are the fence tags to lex. Nil means pretok.DefaultLanguages.
	Languages []string `toml:"languages"`
	Log       Log      `toml:"log"`
	Output    Output   `toml:"output"`
}

// Log selects the diagnostic logger.
type Log struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// Output holds defaults for the split command.
type Output struct {
	Format  string   `toml:"format"`
	Include []string `toml:"include"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "warn", Format: "text"},
		Output: Output{Format: "table", Include: []string{"*.md", "*.markdown"}},
	}
}

// Load reads path over the defaults and then applies the environment. An
// empty path reads DefaultFile if it exists.
func Load(fsys fs.FS, path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := fs.ReadFile(fsys, path)

	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, err
	}

	if env := getenv(EnvLanguages); env != "" {
		langs, err := shlex.Split(env)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLanguages, err)
		}

		cfg.Languages = langs
	}

	return cfg, cfg.Validate()
}

// LoadOS is Load against the local file system and the process environment.
func LoadOS(path string) (Config, error) {
	if path == "" {
		return Load(os.DirFS("."), "", os.Getenv)
	}

	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path), os.Getenv)
}

func decode(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks the values that have a fixed set of choices.
func (c Config) Validate() error {
	if _, err := c.Log.level(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (expected text|json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// LanguageList returns the languages to enable, falling back to the defaults.
func (c Config) LanguageList() []string {
	if c.Languages == nil {
		return pretok.DefaultLanguages()
	}

	return c.Languages
}

func (l Log) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q (expected debug|info|warn|error)", ErrInvalid, l.Level)
	}

	return level, nil
}

// Logger builds the diagnostic logger writing to w.
func (l Log) Logger(w io.Writer) *slog.Logger {
	level, err := l.level()
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

var (
	// ErrUnknownKey is returned for keys in the file that Config does not define.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalid is returned for values outside their allowed set.
	ErrInvalid = errors.New("invalid configuration value")
)
