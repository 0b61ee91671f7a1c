// Package config loads logger settings from a YAML file, .env files and
// DUOLOG_* environment variables, and keeps a running logger in sync
// with its config file.
package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/inspect"
	"github.com/philipp01105/duolog/logger"
	"github.com/philipp01105/duolog/rotate"
	"github.com/philipp01105/duolog/stream"
)

// EnvPrefix is the prefix of environment variables overriding config
// keys, e.g. DUOLOG_FILE_PATH for file.path
const EnvPrefix = "DUOLOG"

// Config is the file/env representation of a logger
type Config struct {
	Label   string        `mapstructure:"label"`
	Debug   DebugConfig   `mapstructure:"debug"`
	Inspect InspectConfig `mapstructure:"inspect"`
	File    FileConfig    `mapstructure:"file"`
}

// DebugConfig mirrors logger.DebugMode
type DebugConfig struct {
	// Enabled forces debugging on or off. Unset detects it.
	Enabled      *bool `mapstructure:"enabled"`
	PrintMessage bool  `mapstructure:"print_message"`
	WriteToFile  bool  `mapstructure:"write_to_file"`
}

// InspectConfig mirrors inspect.Options
type InspectConfig struct {
	Colors          *bool `mapstructure:"colors"`
	Depth           int   `mapstructure:"depth"`
	Verbose         bool  `mapstructure:"verbose"`
	SortKeys        bool  `mapstructure:"sort_keys"`
	// MaxStringLength is measured in terminal cells, not bytes
	MaxStringLength int   `mapstructure:"max_string_length"`
}

// FileConfig describes the write stream. An empty Path means no file.
type FileConfig struct {
	Path        string `mapstructure:"path"`
	Mode        string `mapstructure:"mode"`
	Compression string `mapstructure:"compression"`
	MaxArchives int    `mapstructure:"max_archives"`
}

// keys lists every config key so environment overrides work for keys
// absent from the file
var keys = []string{
	"label",
	"debug.enabled", "debug.print_message", "debug.write_to_file",
	"inspect.colors", "inspect.depth", "inspect.verbose", "inspect.sort_keys", "inspect.max_string_length",
	"file.path", "file.mode", "file.compression", "file.max_archives",
}

// setDefaults sets default values for every optional setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug.print_message", true)
	v.SetDefault("debug.write_to_file", true)
	v.SetDefault("file.mode", stream.Append.String())
	v.SetDefault("file.compression", "gzip")
}

// loadDotEnv loads .env from the working directory and from the config
// file's directory. Variables already set are not overridden.
func loadDotEnv(path string) error {
	candidates := []string{".env"}
	if path != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(path), ".env"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// NewViper prepares a viper instance reading path (optional) with
// environment overrides
func NewViper(path string) (*viper.Viper, error) {
	if err := loadDotEnv(path); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Decode unmarshals and validates the current state of v
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads path (may be empty) plus environment overrides
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// Validate checks the config for values a logger cannot use
func (c *Config) Validate() error {
	var errs []error
	if _, err := stream.ParseMode(c.File.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := rotate.CodecByName(c.File.Compression); err != nil {
		errs = append(errs, core.NewConfigurationError("validate", err.Error()))
	}
	if c.File.MaxArchives < 0 {
		errs = append(errs, core.NewConfigurationError("validate", "file.max_archives must not be negative"))
	}
	if c.Inspect.Depth < 0 {
		errs = append(errs, core.NewConfigurationError("validate", "inspect.depth must not be negative"))
	}
	if c.Inspect.MaxStringLength < 0 {
		errs = append(errs, core.NewConfigurationError("validate", "inspect.max_string_length must not be negative"))
	}
	return errors.Join(errs...)
}

// DebugMode converts the debug section
func (c *Config) DebugMode() logger.DebugMode {
	d := logger.DebugMode{
		PrintMessage: logger.Bool(c.Debug.PrintMessage),
		WriteToFile:  logger.Bool(c.Debug.WriteToFile),
	}
	if c.Debug.Enabled != nil {
		d.Enabled = logger.Static(*c.Debug.Enabled)
	}
	return d
}

// InspectOptions converts the inspect section
func (c *Config) InspectOptions() *inspect.Options {
	return &inspect.Options{
		Colors:          c.Inspect.Colors,
		Depth:           c.Inspect.Depth,
		Verbose:         c.Inspect.Verbose,
		SortKeys:        c.Inspect.SortKeys,
		MaxStringLength: c.Inspect.MaxStringLength,
	}
}

// StreamOptions converts the file section
func (c *Config) StreamOptions() (stream.Options, error) {
	mode, err := stream.ParseMode(c.File.Mode)
	if err != nil {
		return stream.Options{}, err
	}
	codec, err := rotate.CodecByName(c.File.Compression)
	if err != nil {
		return stream.Options{}, core.NewConfigurationError("stream options", err.Error())
	}
	rotation := stream.DefaultRotation()
	if codec.Ext != rotate.Gzip.Ext {
		rotation = stream.Compress(codec)
	}
	return stream.Options{
		Path:        c.File.Path,
		Mode:        mode,
		Rotation:    rotation,
		MaxArchives: c.File.MaxArchives,
	}, nil
}

// Apply copies the label, debug and inspect settings onto l
func (c *Config) Apply(l *logger.Logger) {
	l.SetDebugMode(c.DebugMode())
	l.SetInspectOptions(c.InspectOptions())
	l.SetLabel(c.Label)
}

// NewLogger builds a logger from cfg and opens its write stream when
// cfg.File.Path is set. Extra builder options can be applied through b,
// which may be nil.
func NewLogger(ctx context.Context, cfg *Config, b *logger.Builder) (*logger.Logger, error) {
	if b == nil {
		b = logger.NewBuilder()
	}
	l := b.
		WithLabel(cfg.Label).
		WithDebugMode(cfg.DebugMode()).
		WithInspectOptions(cfg.InspectOptions()).
		Build()

	if cfg.File.Path == "" {
		return l, nil
	}
	opts, err := cfg.StreamOptions()
	if err != nil {
		return nil, err
	}
	if err := l.CreateFileWriteStream(ctx, opts); err != nil {
		return nil, err
	}
	return l, nil
}

// Watch re-applies the config file to l whenever it changes. Invalid
// configs are reported to onError (may be nil) and otherwise ignored.
// The write stream is not reopened.
func Watch(v *viper.Viper, l *logger.Logger, onError func(error)) {
	v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := Decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		cfg.Apply(l)
	})
	v.WatchConfig()
}
