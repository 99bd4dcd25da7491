package tinygo

import (
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/pkg/connector/ble"
)

func IsAdapterError(_ error) bool {
	return false
}

func AdapterErrorHelpMessage(err error) string {
	return err.Error()
}

func newAdapter(id string) (*bluetooth.Adapter, error) {
	if id != "" {
		return nil, errors.WithStack(ble.ErrAdapterInvalidID)
	}

	return bluetooth.DefaultAdapter, nil
}

// CoreBluetooth reports dropped links through the connect handler, which linkUp already tracks.
func newLinkStatus(_ bluetooth.Address, _ *bluetooth.Device) linkStatus {
	return func() (bool, error) {
		return true, nil
	}
}

// CoreBluetooth hides MAC addresses and identifies peripherals by UUID.
func parseAddress(address string) (bluetooth.Address, error) {
	id, err := bluetooth.ParseUUID(address)
	if err != nil {
		return bluetooth.Address{}, errors.Wrapf(err, "tinygo: failed to parse peripheral UUID %q", address)
	}

	return bluetooth.Address{
		UUID: id,
	}, nil
}
