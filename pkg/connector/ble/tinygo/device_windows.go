package tinygo

import (
	"strings"

	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/pkg/connector/ble"
)

// Suffix of the discovery error for GattCommunicationStatusUnreachable.
const unreachableSuffix = "failed with code 1"

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

type serviceDiscoverer interface {
	DiscoverServices(uuids []bluetooth.UUID) ([]bluetooth.DeviceService, error)
}

// WinRT has no disconnect callback here, so an uncached service discovery round trip decides
// whether the peripheral is still reachable.
func newLinkStatus(_ bluetooth.Address, client *bluetooth.Device) linkStatus {
	return func() (bool, error) {
		return gattReachable(client)
	}
}

func gattReachable(d serviceDiscoverer) (bool, error) {
	if _, err := d.DiscoverServices(nil); err != nil {
		if strings.HasSuffix(err.Error(), unreachableSuffix) {
			return false, nil
		}
		return false, errors.Wrap(err, "tinygo: failed to query link state")
	}
	return true, nil
}
