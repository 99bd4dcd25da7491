// Package goble implements the ble interfaces on top of github.com/go-ble/ble, which talks to
// raw HCI sockets on Linux and to CoreBluetooth on macOS.
package goble

import (
	"strconv"
	"strings"

	goble "github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/pkg/connector/ble"
)

const bluetoothBaseSuffix = "-0000-1000-8000-00805f9b34fb"

func toGobleUUID(id uuid.UUID) goble.UUID {
	return goble.MustParse(id.String())
}

// fromGobleUUID expands 16- and 32-bit UUIDs against the Bluetooth base UUID.
func fromGobleUUID(u goble.UUID) (uuid.UUID, error) {
	s := u.String()
	switch len(u) {
	case 2:
		s = "0000" + s + bluetoothBaseSuffix
	case 4:
		s += bluetoothBaseSuffix
	}
	return uuid.Parse(s)
}

// parseDeviceID accepts either an HCI index ("1") or an interface name ("hci1").
func parseDeviceID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "hci"))
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ble.ErrAdapterInvalidID, "goble: %q", id)
	}
	return n, nil
}
