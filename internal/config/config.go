package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dshills/az/internal/config/loader"
	"github.com/dshills/az/internal/engine"
)

// FileNames are the settings files looked up in the user config
// directory, in order.
var FileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config is the resolved set of az settings.
type Config struct {
	Editor EditorConfig
	Log    LogConfig

	// Colors maps theme color names to hex strings.
	Colors map[string]string
}

// EditorConfig holds the [editor] section.
type EditorConfig struct {
	TabSize   int
	UndoDepth int
	StatusTTL int
	Watch     bool
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string
	Path  string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabSize:   engine.DefaultTabSize,
			UndoDepth: engine.DefaultUndoDepth,
			StatusTTL: engine.DefaultStatusTTL,
			Watch:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Colors: map[string]string{},
	}
}

// DefaultPath returns the first existing settings file in the user
// config directory, or the TOML name when there is none. It returns ""
// when the platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "az")
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, FileNames[0])
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs  loader.FileSystem
	env loader.Loader
}

// WithFileSystem reads the settings file through fs.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnv replaces the environment layer. Nil disables it.
func WithEnv(env loader.Loader) Option {
	return func(o *options) {
		o.env = env
	}
}

// Load resolves settings from the defaults, the file at path and the
// environment. An empty path or a missing file leaves the defaults in
// place.
func Load(path string, opts ...Option) (Config, error) {
	o := options{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.EnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var merged map[string]any
	if path != "" {
		file, err := loader.ForFile(o.fs, path).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}
	if o.env != nil {
		env, err := o.env.Load()
		if err != nil {
			return Config{}, fmt.Errorf("reading environment: %w", err)
		}
		// Other programs' AZ_ variables are not ours to reject.
		maps.DeleteFunc(env, func(section string, _ any) bool {
			return !slices.Contains(sections, section)
		})
		merged = loader.DeepMerge(merged, env)
	}

	return Decode(merged)
}

// sections are the known top-level tables.
var sections = []string{"editor", "log", "colors"}

// Decode applies a settings map over the defaults and validates it.
func Decode(m map[string]any) (Config, error) {
	cfg := Default()

	for _, section := range slices.Sorted(maps.Keys(m)) {
		values, ok := m[section].(map[string]any)
		if !ok {
			return cfg, &ValidationError{Path: section, Message: "must be a table", Value: m[section]}
		}

		var err error
		switch section {
		case "editor":
			err = cfg.Editor.decode(values)
		case "log":
			err = cfg.Log.decode(values)
		case "colors":
			err = decodeColors(cfg.Colors, values)
		default:
			err = &ValidationError{Path: section, Message: "unknown section"}
		}
		if err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func (c *EditorConfig) decode(m map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := "editor." + key
		v := m[key]

		var err error
		switch key {
		case "tab_size":
			c.TabSize, err = intIn(path, v, 1, 16)
		case "undo_depth":
			c.UndoDepth, err = intIn(path, v, 1, 10000)
		case "status_ttl":
			c.StatusTTL, err = intIn(path, v, 1, 100)
		case "watch":
			b, ok := v.(bool)
			if !ok {
				err = &ValidationError{Path: path, Message: "must be true or false", Value: v}
			}
			c.Watch = b
		default:
			err = &ValidationError{Path: path, Message: "unknown setting"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *LogConfig) decode(m map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := "log." + key
		s, ok := m[key].(string)
		if !ok {
			return &ValidationError{Path: path, Message: "must be a string", Value: m[key]}
		}

		switch key {
		case "level":
			s = strings.ToLower(s)
			if !slices.Contains(LogLevels, s) {
				return &ValidationError{Path: path, Message: "must be one of " + strings.Join(LogLevels, ", "), Value: s}
			}
			c.Level = s
		case "path":
			c.Path = s
		default:
			return &ValidationError{Path: path, Message: "unknown setting"}
		}
	}
	return nil
}

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

func decodeColors(dst map[string]string, m map[string]any) error {
	for name, v := range m {
		s, ok := v.(string)
		if !ok {
			return &ValidationError{Path: "colors." + name, Message: "must be a hex string", Value: v}
		}
		dst[name] = s
	}
	return nil
}

// intIn converts the integer types the TOML, YAML and environment
// loaders produce and checks the range.
func intIn(path string, v any, lo, hi int) (int, error) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case uint64:
		n = int(x)
	default:
		return 0, &ValidationError{Path: path, Message: "must be an integer", Value: v}
	}
	if n < lo || n > hi {
		return 0, &ValidationError{Path: path, Message: fmt.Sprintf("must be between %d and %d", lo, hi), Value: n}
	}
	return n, nil
}
