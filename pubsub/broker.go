// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBufferSize is the per-subscriber channel capacity used by NewBroker.
const DefaultBufferSize = 64

// Message is a published payload with its publication time.
type Message[T any] struct {
	Payload   T
	Timestamp time.Time
}

type subscriber[T any] struct {
	ch     chan Message[T]
	accept func(T) bool
}

// SubscribeOption configures one subscription.
type SubscribeOption[T any] func(*subscriber[T])

// WithFilter delivers only payloads for which accept returns true. Filtered
// payloads do not count as dropped.
func WithFilter[T any](accept func(T) bool) SubscribeOption[T] {
	return func(s *subscriber[T]) { s.accept = accept }
}

// Broker fans published payloads out to subscriber channels.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[*subscriber[T]]struct{}
	closed     bool
	done       chan struct{}
	bufferSize int
	dropped    atomic.Uint64
}

// NewBroker creates a broker with DefaultBufferSize.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](DefaultBufferSize)
}

// NewBrokerWithBuffer creates a broker whose subscribers buffer size messages.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[*subscriber[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: size,
	}
}

// Subscribe returns a channel receiving messages published from now on.
// The channel closes when ctx ends or the broker closes; subscribing to a
// closed broker yields a closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context, opts ...SubscribeOption[T]) <-chan Message[T] {
	sub := &subscriber[T]{ch: make(chan Message[T], b.bufferSize)}
	for _, opt := range opts {
		opt(sub)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		return sub.ch
	}
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(sub)
		case <-b.done:
		}
	}()
	return sub.ch
}

func (b *Broker[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

// Publish hands payload to every accepting subscriber without blocking and
// returns how many received it. A subscriber with a full buffer misses the
// message, which is counted by Dropped.
func (b *Broker[T]) Publish(payload T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return 0
	}

	msg := Message[T]{Payload: payload, Timestamp: time.Now()}
	delivered := 0
	for sub := range b.subs {
		if sub.accept != nil && !sub.accept(payload) {
			continue
		}
		select {
		case sub.ch <- msg:
			delivered++
		default:
			b.dropped.Add(1)
		}
	}
	return delivered
}

// Dropped returns the number of deliveries lost to full buffers.
func (b *Broker[T]) Dropped() uint64 {
	return b.dropped.Load()
}

// Close ends every subscription. Later publishes are ignored.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for sub := range b.subs {
		close(sub.ch)
	}
	clear(b.subs)
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
