// Package connector defines the data a Bluetooth transport hands to the session that consumes it.
package connector

import "github.com/google/uuid"

// BufferSize is the number of inbound notifications that can be queued before a transport
// callback blocks.
const BufferSize = 5

// Notification is a value pushed by the peripheral on a subscribed characteristic.
type Notification struct {
	// Characteristic identifies the characteristic the value arrived on.
	Characteristic uuid.UUID
	// Value is owned by the receiver; transports must not reuse the backing array.
	Value []byte
}
