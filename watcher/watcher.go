// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/opencontainers/go-digest"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/afero"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/manager"
	"github.com/stacklok/skinstudio-core/pubsub"
	"github.com/stacklok/skinstudio-core/storage"
)

// DefaultSuppressWindow is how long events are ignored after a save.
const DefaultSuppressWindow = 500 * time.Millisecond

// Change describes an external modification of a watched document.
type Change struct {
	Path   string
	Editor document.Editor
	// Digest is the new content digest, empty when the file was removed.
	Digest  digest.Digest
	Removed bool
}

// DigestSource reports the digest of the content a storage last read from or
// wrote to path. *storage.Storage implements it.
type DigestSource interface {
	Digest(path string) (digest.Digest, bool)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// WithSuppressWindow sets how long events are ignored after a save.
func WithSuppressWindow(d time.Duration) Option {
	return func(w *Watcher) { w.window = d }
}

// WithDigestSources makes the watcher treat a file whose content matches a
// digest known to one of srcs as unchanged, however long ago it was written.
func WithDigestSources(srcs ...DigestSource) Option {
	return func(w *Watcher) { w.sources = append(w.sources, srcs...) }
}

// WithFS sets the filesystem used to compute digests. It must view the same
// files fsnotify sees; the default is the OS filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(w *Watcher) { w.fs = fsys }
}

type watched struct {
	editor document.Editor
	digest digest.Digest
}

// Watcher watches the files of open documents.
type Watcher struct {
	fsw      *fsnotify.Watcher
	fs       afero.Fs
	log      logr.Logger
	window   time.Duration
	onChange func(Change)
	recent   *gocache.Cache
	sources  []DigestSource

	mu    sync.Mutex
	files map[string]*watched
	dirs  map[string]int
}

// New creates a Watcher calling onChange for every external change. onChange
// runs on the goroutine executing Run.
func New(onChange func(Change), opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		fs:       afero.NewOsFs(),
		log:      logr.Discard(),
		window:   DefaultSuppressWindow,
		onChange: onChange,
		files:    make(map[string]*watched),
		dirs:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.recent = gocache.New(w.window, 2*w.window)
	return w, nil
}

// Watch starts watching path on behalf of ed.
func (w *Watcher) Watch(path string, ed document.Editor) error {
	key, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if f, ok := w.files[key]; ok {
		f.editor = ed
		return nil
	}
	dir := filepath.Dir(key)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++

	f := &watched{editor: ed, digest: w.currentDigest(key)}
	w.files[key] = f
	w.log.V(1).Info("watching document", "path", key)
	return nil
}

// Unwatch stops watching path. Unknown paths are ignored.
func (w *Watcher) Unwatch(path string) error {
	key, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unwatchLocked(key)
}

func (w *Watcher) unwatchLocked(key string) error {
	if _, ok := w.files[key]; !ok {
		return nil
	}
	delete(w.files, key)
	dir := filepath.Dir(key)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	w.log.V(1).Info("released directory", "dir", dir)
	if err := w.fsw.Remove(dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return err
	}
	return nil
}

// Watching reports whether path is watched.
func (w *Watcher) Watching(path string) bool {
	key, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[key]
	return ok
}

// MarkSaved records that path was just written by the studio itself.
func (w *Watcher) MarkSaved(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.recent.SetDefault(key, struct{}{})

	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.files[key]; ok {
		if d := w.currentDigest(key); d != "" {
			f.digest = d
		}
	}
}

// currentDigest returns the digest a source recorded for key, or the digest
// of the file on disk. It is empty when neither is available.
func (w *Watcher) currentDigest(key string) digest.Digest {
	if d, ok := w.known(key); ok {
		return d
	}
	d, err := storage.FileDigest(w.fs, key)
	if err != nil {
		return ""
	}
	return d
}

// known returns the first digest a source recorded for key.
func (w *Watcher) known(key string) (digest.Digest, bool) {
	for _, src := range w.sources {
		if d, ok := src.Digest(key); ok {
			return d, true
		}
	}
	return "", false
}

// isOwn reports whether d is content some source read or wrote at key.
func (w *Watcher) isOwn(key string, d digest.Digest) bool {
	for _, src := range w.sources {
		if sd, ok := src.Digest(key); ok && sd == d {
			return true
		}
	}
	return false
}

// Follow applies lifecycle events until ctx is done or events is closed.
func (w *Watcher) Follow(ctx context.Context, events <-chan pubsub.Message[manager.Event]) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			w.apply(msg.Payload)
		}
	}
}

func (w *Watcher) apply(ev manager.Event) {
	switch ev.Kind {
	case manager.Opened:
		if ev.Path == "" {
			return
		}
		if err := w.Watch(ev.Path, ev.Editor); err != nil {
			w.log.Error(err, "cannot watch document", "path", ev.Path)
		}
	case manager.Closed:
		if ev.Path == "" {
			return
		}
		if err := w.Unwatch(ev.Path); err != nil {
			w.log.Error(err, "cannot unwatch document", "path", ev.Path)
		}
	case manager.Saved:
		w.MarkSaved(ev.Path)
		if ev.Editor != nil {
			w.retarget(ev.Editor, ev.Path)
		}
	}
}

// retarget moves the watch of ed to path after a save-as.
func (w *Watcher) retarget(ed document.Editor, path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	for k, f := range w.files {
		if f.editor == ed && k != key {
			if err := w.unwatchLocked(k); err != nil {
				w.log.Error(err, "cannot unwatch document", "path", k)
			}
		}
	}
	_, ok := w.files[key]
	w.mu.Unlock()

	if !ok {
		if err := w.Watch(path, ed); err != nil {
			w.log.Error(err, "cannot watch document", "path", path)
		}
	}
}

// Run processes filesystem events until ctx is done. It closes the
// underlying fsnotify watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "filesystem watch error")
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	key := filepath.Clean(ev.Name)
	if _, recent := w.recent.Get(key); recent {
		w.log.V(1).Info("ignoring own write", "path", key)
		return
	}

	w.mu.Lock()
	f, ok := w.files[key]
	if !ok {
		w.mu.Unlock()
		return
	}
	change := Change{Path: key, Editor: f.editor}
	d, err := storage.FileDigest(w.fs, key)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if f.digest == "" {
			w.mu.Unlock()
			return
		}
		f.digest = ""
		change.Removed = true
	case err != nil:
		w.mu.Unlock()
		w.log.Error(err, "cannot read changed document", "path", key)
		return
	case d == f.digest:
		w.mu.Unlock()
		return
	case w.isOwn(key, d):
		f.digest = d
		w.mu.Unlock()
		w.log.V(1).Info("content matches a stored digest", "path", key)
		return
	default:
		f.digest = d
		change.Digest = d
	}
	w.mu.Unlock()

	w.log.Info("document changed on disk", "path", key, "removed", change.Removed)
	if w.onChange != nil {
		w.onChange(change)
	}
}

// Close releases the fsnotify watcher without waiting for Run.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
