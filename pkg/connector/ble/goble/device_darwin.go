package goble

import (
	goble "github.com/go-ble/ble"
	"github.com/go-ble/ble/darwin"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

func IsAdapterError(_ error) bool {
	return false
}

func AdapterErrorHelpMessage(err error) string {
	return err.Error()
}

func newDevice(id string) (goble.Device, error) {
	if id != "" {
		log.Warning("Darwin does not support specifying a Bluetooth adapter ID")
		return nil, errors.WithStack(ble.ErrAdapterInvalidID)
	}
	device, err := darwin.NewDevice()
	if err != nil {
		return nil, err
	}
	return device, nil
}
