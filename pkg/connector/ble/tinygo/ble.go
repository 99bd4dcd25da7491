// Package tinygo implements the ble interfaces on top of tinygo.org/x/bluetooth, which uses WinRT
// on Windows, BlueZ over D-Bus on Linux and CoreBluetooth on macOS.
package tinygo

import (
	"github.com/google/uuid"
	"tinygo.org/x/bluetooth"
)

func toBluetoothUUID(id uuid.UUID) bluetooth.UUID {
	uuidParsed, err := bluetooth.ParseUUID(id.String())
	if err != nil {
		panic(err)
	}
	return uuidParsed
}

func fromBluetoothUUID(u bluetooth.UUID) (uuid.UUID, error) {
	return uuid.Parse(u.String())
}
