package ble

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/esp32remote/receiver/pkg/connector"
)

// Beacon summarizes the advertisements received from one peripheral during a scan.
type Beacon struct {
	Address     string
	LocalName   string
	RSSI        int16
	Connectable bool
}

// Opener acquires the local Bluetooth adapter for one session attempt.
type Opener func(ctx context.Context) (Adapter, error)

// Adapter is a local Bluetooth controller.
type Adapter interface {
	// Scan runs an unfiltered scan for the settle period and returns every peripheral seen.
	Scan(ctx context.Context, settle time.Duration) ([]Beacon, error)
	// Peripheral returns a handle for a scanned peripheral. It does not connect.
	Peripheral(beacon Beacon) (Device, error)
	Close() error
}

// Device is a remote peripheral.
type Device interface {
	// IsConnected queries the current link state.
	IsConnected() (bool, error)
	Connect(ctx context.Context) error
	// Service discovers the services of a connected peripheral and returns the one matching id.
	Service(ctx context.Context, id uuid.UUID) (Service, error)
	// Close drops subscriptions and disconnects.
	Close() error
}

type Service interface {
	Characteristic(ctx context.Context, id uuid.UUID) (Characteristic, error)
}

type Characteristic interface {
	// Subscribe enables notifications. The handler runs on a transport goroutine.
	Subscribe(handler func(connector.Notification)) error
}
