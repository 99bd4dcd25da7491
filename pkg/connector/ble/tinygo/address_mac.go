//go:build !darwin

package tinygo

import (
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"
)

func parseAddress(address string) (bluetooth.Address, error) {
	mac, err := bluetooth.ParseMAC(address)
	if err != nil {
		return bluetooth.Address{}, errors.Wrapf(err, "tinygo: failed to parse MAC address %q", address)
	}

	return bluetooth.Address{
		MACAddress: bluetooth.MACAddress{
			MAC: mac,
		},
	}, nil
}
