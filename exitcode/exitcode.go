// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package exitcode maps studio errors to process exit codes.
//
// A command may pin a code with [WithCode]. Otherwise [Code] classifies the
// error by the sentinel it wraps. Missing files and unresolved templates,
// storages, editors, or project entries exit with [NotFound]. Documents,
// manifests, projects, and settings that fail validation exit with [Invalid].
// Anything else exits with [Failure].
package exitcode

import (
	"errors"
	"io/fs"

	"github.com/stacklok/skinstudio-core/config"
	"github.com/stacklok/skinstudio-core/manager"
	"github.com/stacklok/skinstudio-core/plugin"
	"github.com/stacklok/skinstudio-core/project"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/schema"
	"github.com/stacklok/skinstudio-core/storage"
	"github.com/stacklok/skinstudio-core/validation/name"
)

// Process exit codes used by the studio CLI.
const (
	OK       = 0
	Failure  = 1
	Usage    = 2
	NotFound = 3
	Invalid  = 4
)

// classes is checked in order; the first class with a matching sentinel wins.
var classes = []struct {
	code      int
	sentinels []error
}{
	{NotFound, []error{
		fs.ErrNotExist,
		registry.ErrNoTemplateFound,
		registry.ErrNoStorageFound,
		registry.ErrNoEditorFound,
		project.ErrNotFound,
	}},
	{Invalid, []error{
		schema.ErrValidation,
		storage.ErrUnsupportedDocument,
		storage.ErrEmptyDocument,
		storage.ErrUnknownCodec,
		plugin.ErrInvalidManifest,
		plugin.ErrScript,
		project.ErrInvalidProject,
		config.ErrInvalid,
		name.ErrInvalid,
		manager.ErrMissingReference,
	}},
}

// CodedError carries an exit code pinned by a command.
type CodedError struct {
	err  error
	code int
}

func (e *CodedError) Error() string { return e.err.Error() }
func (e *CodedError) Unwrap() error { return e.err }

// ExitCode returns the pinned code.
func (e *CodedError) ExitCode() int { return e.code }

// WithCode pins code to err. WithCode(nil, c) is nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// New returns an error with the given message and pinned code.
func New(msg string, code int) error {
	return WithCode(errors.New(msg), code)
}

// Code returns the exit code for err. A pinned code wins, the outermost one
// if there are several. Unpinned errors are classified by sentinel and fall
// back to Failure.
func Code(err error) int {
	if err == nil {
		return OK
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return Classify(err)
}

// Classify returns the sentinel class of err, ignoring any pinned code.
func Classify(err error) int {
	if err == nil {
		return OK
	}
	for _, c := range classes {
		for _, s := range c.sentinels {
			if errors.Is(err, s) {
				return c.code
			}
		}
	}
	return Failure
}
