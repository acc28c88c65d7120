// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stacklok/skinstudio-core/config"
	"github.com/stacklok/skinstudio-core/env"
	"github.com/stacklok/skinstudio-core/exitcode"
	"github.com/stacklok/skinstudio-core/logger"
	"github.com/stacklok/skinstudio-core/logging"
	"github.com/stacklok/skinstudio-core/manager"
	"github.com/stacklok/skinstudio-core/plugin"
	"github.com/stacklok/skinstudio-core/pubsub"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/storage"
)

// app holds what every command shares once flags are parsed.
type app struct {
	fs  afero.Fs
	env env.Reader

	cfgFile    string
	codec      string
	pluginDirs []string
	noPlugins  bool

	cfg    config.Config
	log    *slog.Logger
	reg    *registry.Registry
	broker *pubsub.Broker[manager.Event]
	mgr    *manager.Manager
}

func newApp(r env.Reader) *app {
	return &app{fs: afero.NewOsFs(), env: r}
}

// setup loads configuration and plugins and builds the registry and manager.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, a.env, config.WithFS(a.fs))
	if err != nil {
		return exitcode.WithCode(err, exitcode.Invalid)
	}
	if a.codec != "" {
		cfg.DefaultCodec = a.codec
	}
	if cmd.Flags().Changed("plugin-dir") {
		cfg.PluginDirs = a.pluginDirs
	}
	if a.noPlugins {
		cfg.PluginDirs = nil
	}
	if err := cfg.Validate(); err != nil {
		return exitcode.WithCode(err, exitcode.Usage)
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return exitcode.WithCode(err, exitcode.Invalid)
	}
	if err := logger.Initialize(logger.Options{Env: a.env, Debug: level <= slog.LevelDebug}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logOpts, err := cfg.Logging()
	if err != nil {
		return exitcode.WithCode(err, exitcode.Invalid)
	}
	a.log = logging.New(append(logOpts, logging.WithOutput(cmd.ErrOrStderr()))...)

	codec, err := cfg.Codec()
	if err != nil {
		return exitcode.WithCode(err, exitcode.Invalid)
	}

	a.reg = registry.New()
	loader := plugin.NewLoader(plugin.WithFS(a.fs), plugin.WithLogger(a.log))
	providers, err := loader.Load(cmd.Context(), cfg.PluginDirs...)
	if err != nil {
		return err
	}
	n := a.reg.RegisterAll(providers...)
	logger.Debugw("plugins loaded", "dirs", cfg.PluginDirs, "registrations", n)
	registerBuiltins(a.reg, a.fs, codec, a.log)

	a.broker = pubsub.NewBroker[manager.Event]()
	a.mgr = manager.New(a.reg, manager.WithLogger(a.log), manager.WithBroker(a.broker))
	return nil
}

// teardown closes the broker so followers stop.
func (a *app) teardown() {
	if a.broker != nil {
		if n := a.broker.Dropped(); n > 0 {
			logger.Warnw("lifecycle events dropped by slow listeners", "count", n)
		}
		a.broker.Close()
	}
}

// outputStorage returns a storage writing with the codec that matches path,
// falling back to the configured default codec.
func (a *app) outputStorage(path string) (*storage.Storage, error) {
	codec, err := a.cfg.Codec()
	if err != nil {
		return nil, err
	}
	return newBuiltinStorage(a.fs, codec, a.log), nil
}
