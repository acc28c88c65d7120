// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/stacklok/skinstudio-core/env"
	"github.com/stacklok/skinstudio-core/logging"
	"github.com/stacklok/skinstudio-core/storage"
	"github.com/stacklok/skinstudio-core/watcher"
)

// AppName names the XDG configuration directory.
const AppName = "skinstudio"

// ErrInvalid is returned when a loaded value fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the studio settings.
type Config struct {
	LogLevel            string        `mapstructure:"log_level"`
	LogFormat           string        `mapstructure:"log_format"`
	PluginDirs          []string      `mapstructure:"plugin_dirs"`
	Watch               bool          `mapstructure:"watch"`
	WatchSuppressWindow time.Duration `mapstructure:"watch_suppress_window"`
	DefaultCodec        string        `mapstructure:"default_codec"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-"`
}

// Dir returns the studio configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:            "info",
		LogFormat:           "text",
		PluginDirs:          []string{filepath.Join(Dir(), "plugins")},
		Watch:               false,
		WatchSuppressWindow: watcher.DefaultSuppressWindow,
		DefaultCodec:        storage.YAML.Name(),
	}
}

type options struct {
	fs afero.Fs
}

// Option configures Load.
type Option func(*options)

// WithFS reads the configuration file from fsys instead of the OS filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// Load reads the configuration. An explicit path must exist; otherwise a
// missing file in Dir is not an error. A nil envReader reads the process
// environment.
func Load(path string, envReader env.Reader, opts ...Option) (Config, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}
	if envReader == nil {
		envReader = &env.OSReader{}
	}

	v := viper.New()
	v.SetFs(o.fs)
	setDefaults(v, Defaults())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnv(v, envReader)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("plugin_dirs", d.PluginDirs)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_suppress_window", d.WatchSuppressWindow)
	v.SetDefault("default_codec", d.DefaultCodec)
}

func applyEnv(v *viper.Viper, r env.Reader) {
	for _, key := range v.AllKeys() {
		val := r.Getenv(env.Key(key))
		if val == "" {
			continue
		}
		if key == "plugin_dirs" {
			v.Set(key, filepath.SplitList(val))
			continue
		}
		v.Set(key, val)
	}
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: log_format: %w", ErrInvalid, err)
	}
	if _, err := storage.CodecByName(c.DefaultCodec); err != nil {
		return fmt.Errorf("%w: default_codec: %w", ErrInvalid, err)
	}
	if c.WatchSuppressWindow < 0 {
		return fmt.Errorf("%w: watch_suppress_window must not be negative", ErrInvalid)
	}
	return nil
}

// Logging returns the logging options for the configured level and format.
func (c Config) Logging() ([]logging.Option, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return []logging.Option{logging.WithLevel(level), logging.WithFormat(format)}, nil
}

// Codec returns the codec named by DefaultCodec.
func (c Config) Codec() (storage.Codec, error) {
	return storage.CodecByName(c.DefaultCodec)
}
