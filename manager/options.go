// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"log/slog"

	"github.com/stacklok/skinstudio-core/pubsub"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for lifecycle debug output.
// The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithBroker publishes every lifecycle event to b after the synchronous
// handlers ran. The Manager does not close the broker.
func WithBroker(b *pubsub.Broker[Event]) Option {
	return func(m *Manager) {
		m.broker = b
	}
}
