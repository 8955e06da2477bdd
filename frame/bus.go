// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Bus is an in-process [Port] that distributes published transforms
// to the callbacks subscribed to each frame name. It is what a transform
// tree client feeds, and what tests and demos publish on directly.
//
// Callbacks run synchronously on the goroutine that calls [Bus.Publish]
// (or [Bus.Subscribe], for a replayed transform), outside the bus lock,
// so a callback may itself subscribe or unsubscribe.
type Bus struct {

	// Replay delivers the latest transform published for a frame
	// to a new subscriber as soon as it subscribes.
	Replay bool

	mu        sync.Mutex
	subs      map[string][]*subscriber
	latest    map[string]Transform
	published map[string]uint64
	closed    bool
}

type subscriber struct {
	id uuid.UUID
	fn func(Transform)
}

// Stats are the distribution statistics for one frame name.
type Stats struct {

	// Published is the number of transforms published for the frame.
	Published uint64

	// Subscribers is the current number of subscriptions to the frame.
	Subscribers int
}

// NewBus returns a new Bus that replays the latest transform to new subscribers.
func NewBus() *Bus {
	return &Bus{
		Replay:    true,
		subs:      make(map[string][]*subscriber),
		latest:    make(map[string]Transform),
		published: make(map[string]uint64),
	}
}

// Subscribe implements [Port].
func (b *Bus) Subscribe(name string, fn func(Transform)) (Handle, error) {
	if name == "" {
		return Handle{}, ErrEmptyFrame
	}
	if fn == nil {
		return Handle{}, ErrNilCallback
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return Handle{}, ErrBusClosed
	}
	sub := &subscriber{id: uuid.New(), fn: fn}
	b.subs[name] = append(b.subs[name], sub)
	last, hasLast := b.latest[name]
	b.mu.Unlock()

	if b.Replay && hasLast {
		fn(last)
	}
	return Handle{ID: sub.id, Frame: name}, nil
}

// Unsubscribe implements [Port]. It returns [ErrUnknownHandle]
// if the handle is not currently subscribed.
func (b *Bus) Unsubscribe(h Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[h.Frame]
	i := slices.IndexFunc(subs, func(s *subscriber) bool { return s.id == h.ID })
	if i < 0 {
		return ErrUnknownHandle
	}
	subs = slices.Delete(subs, i, i+1)
	if len(subs) == 0 {
		delete(b.subs, h.Frame)
	} else {
		b.subs[h.Frame] = subs
	}
	return nil
}

// Publish records tf as the latest transform for the named frame and
// calls every callback subscribed to it, in subscription order.
func (b *Bus) Publish(name string, tf Transform) error {
	if name == "" {
		return ErrEmptyFrame
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	b.latest[name] = tf
	b.published[name]++
	subs := slices.Clone(b.subs[name])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(tf)
	}
	return nil
}

// Stats returns the statistics for the named frame.
func (b *Bus) Stats(name string) Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{Published: b.published[name], Subscribers: len(b.subs[name])}
}

// Close removes all subscriptions; subsequent Subscribe and Publish
// calls return [ErrBusClosed]. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.subs = nil
}
