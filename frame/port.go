// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "github.com/google/uuid"

// Port is the subscription side of a transform tree client.
// Delivery rate and cardinality are up to the implementation: a
// subscribed callback may be called zero, one, or many times.
// Callbacks for one subscription are made in delivery order.
type Port interface {

	// Subscribe registers fn to be called with each transform published
	// for the named frame, and returns the handle for unsubscribing.
	// It does not block waiting for a transform.
	Subscribe(frame string, fn func(Transform)) (Handle, error)

	// Unsubscribe removes the subscription for the given handle.
	// Once it returns, the port makes no new calls on that callback,
	// although one already in flight may still complete.
	Unsubscribe(h Handle) error
}

// Handle identifies one subscription made through a [Port].
// The port does not own the subscriber: it only holds the callback.
type Handle struct {

	// ID is the unique identity of the subscription.
	ID uuid.UUID

	// Frame is the name of the subscribed frame.
	Frame string
}

// IsValid returns true if the handle was issued by a port.
func (h Handle) IsValid() bool {
	return h.ID != uuid.Nil
}

func (h Handle) String() string {
	return h.Frame + "/" + h.ID.String()
}
