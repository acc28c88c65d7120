// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/logger"
	"github.com/stacklok/skinstudio-core/manager"
	"github.com/stacklok/skinstudio-core/pubsub"
	"github.com/stacklok/skinstudio-core/recovery"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		reload  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <path>...",
		Short: "Open documents and report changes made by other programs",
		Long: `Open documents and report changes made to their files by other
programs until interrupted. With --reload (or watch: true in the config
file) a changed document is closed and opened again.`,
		Args: args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			if !cmd.Flags().Changed("reload") {
				reload = a.cfg.Watch
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			return a.watch(ctx, cmd, argv, reload)
		},
	}
	cmd.Flags().BoolVar(&reload, "reload", false, "reopen documents changed on disk")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop after this long (0 waits for a signal)")
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, paths []string, reload bool) error {
	mgr := manager.NewGuarded(a.mgr)
	out := cmd.OutOrStdout()

	onChange := func(c watcher.Change) {
		if c.Removed {
			logger.Warnw("document removed on disk", "path", c.Path)
			fmt.Fprintf(out, "removed %s\n", c.Path)
			return
		}
		logger.Infow("document changed on disk", "path", c.Path, "digest", c.Digest.String())
		fmt.Fprintf(out, "changed %s\n", c.Path)
		if reload && c.Editor != nil {
			mgr.Close(c.Editor)
			if _, err := mgr.Open(ctx, c.Path); err != nil {
				logger.Errorw("reload failed", "path", c.Path, "error", err)
			}
		}
	}
	w, err := watcher.New(onChange,
		watcher.WithLogger(logger.NewLogr()),
		watcher.WithSuppressWindow(a.cfg.WatchSuppressWindow),
		watcher.WithFS(a.fs),
		watcher.WithDigestSources(digestSources(a.reg)...),
	)
	if err != nil {
		return err
	}

	events := a.broker.Subscribe(ctx, pubsub.WithFilter(func(ev manager.Event) bool { return ev.Path != "" }))
	go w.Follow(ctx, events)
	unsubscribe := mgr.Subscribe(recovery.Handler(func(ev manager.Event) {
		logger.Debugw("document event", "kind", string(ev.Kind), "path", ev.Path, "title", titleOf(ev.Editor))
	}, a.log))
	defer unsubscribe()

	for _, p := range paths {
		if _, err := mgr.Open(ctx, p); err != nil {
			_ = w.Close()
			return err
		}
		fmt.Fprintf(out, "watching %s\n", p)
	}
	return w.Run(ctx)
}

// digestSources returns the registered storages that record content digests.
func digestSources(reg *registry.Registry) []watcher.DigestSource {
	var out []watcher.DigestSource
	for _, s := range reg.Storages() {
		if src, ok := s.(watcher.DigestSource); ok {
			out = append(out, src)
		}
	}
	return out
}

func titleOf(ed document.Editor) string {
	if ed == nil {
		return ""
	}
	return document.Title(ed)
}
