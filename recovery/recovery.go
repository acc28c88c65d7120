// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/stacklok/skinstudio-core/manager"
)

// ErrPanic matches every *PanicError.
var ErrPanic = errors.New("recovered panic")

// PanicError carries a recovered panic value and the stack at the point of
// the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes ErrPanic and, when the panic value is an error, that error.
func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrPanic, err}
	}
	return []error{ErrPanic}
}

// Call runs fn and converts a panic into a *PanicError.
func Call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

// Handler wraps an event handler so that a panic is logged at ERROR level
// and swallowed instead of unwinding through the manager operation that
// emitted the event. A nil logger discards the report.
func Handler(h manager.Handler, logger *slog.Logger) manager.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(ev manager.Event) {
		err := Call(func() { h(ev) })
		var pe *PanicError
		if errors.As(err, &pe) {
			logger.Error("event handler panicked",
				"event", string(ev.Kind),
				"path", ev.Path,
				"panic", fmt.Sprint(pe.Value),
				"stack", string(pe.Stack),
			)
		}
	}
}
