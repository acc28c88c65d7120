// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package pubsub fans manager lifecycle events out to listeners that run on
their own goroutines, such as the file watcher.

# Basic Usage

	broker := pubsub.NewBroker[string]()
	defer broker.Close()

	ch := broker.Subscribe(ctx)
	broker.Publish("hello")

	msg := <-ch // msg.Payload == "hello"

Publish never blocks the manager. A listener that falls behind misses
messages once its buffer fills; [Broker.Dropped] counts those losses so a
host can report them. [WithFilter] narrows a subscription to the payloads a
listener cares about:

	events := broker.Subscribe(ctx, pubsub.WithFilter(func(ev manager.Event) bool {
		return ev.Path != ""
	}))

Subscriptions end, and their channels close, when the subscription context
is cancelled or the broker is closed.

# Concurrency

A Broker is safe for concurrent use.
*/
package pubsub
