package session

import (
	"time"

	"github.com/google/uuid"
)

// PeripheralName is the local name the remote advertises.
const PeripheralName = "ESP32_Remote"

var (
	ServiceUUID        = uuid.MustParse("4fafc201-1fb5-459e-8fcc-c5c9c331914b")
	CharacteristicUUID = uuid.MustParse("beb5483e-36e1-4688-b7f5-ea07361b26a8")
)

// Identity names the peripheral, service and characteristic a session subscribes to.
type Identity struct {
	Name           string
	Service        uuid.UUID
	Characteristic uuid.UUID
}

var DefaultIdentity = Identity{
	Name:           PeripheralName,
	Service:        ServiceUUID,
	Characteristic: CharacteristicUUID,
}

// Timing holds the fixed delays of the reconnect loop.
type Timing struct {
	ScanSettle       time.Duration // How long to scan before picking the peripheral
	LivenessInterval time.Duration // Quiet period after which the link state is queried
	RetryDelay       time.Duration // Pause between a session ending and the next attempt
}

var DefaultTiming = Timing{
	ScanSettle:       5 * time.Second,
	LivenessInterval: 10 * time.Second,
	RetryDelay:       5 * time.Second,
}
