package tinygo

import (
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/pkg/connector/ble"
)

// bluetooth.DefaultAdapter always drives hci0 on Linux.
const defaultAdapterID = "hci0"

func IsAdapterError(err error) bool {
	// D-Bus not found
	if strings.Contains(err.Error(), "dbus") && strings.HasSuffix(err.Error(), "no such file or directory") {
		return true
	}
	// D-Bus is running but org.bluez is not found
	if strings.Contains(err.Error(), "The name org.bluez was not provided by any .service files") {
		return true
	}
	return false
}

func AdapterErrorHelpMessage(err error) string {
	return "Failed to initialize BLE adapter: \n\t" + err.Error() + "\n" +
		"Make sure bluez and dbus are installed and running.\n" +
		"If running in a container, make sure the container has access to the host's D-Bus socket. (e.g. -v /var/run/dbus:/var/run/dbus)"
}

func newAdapter(id string) (*bluetooth.Adapter, error) {
	if id != "" && id != defaultAdapterID && id != "0" {
		return nil, errors.Wrapf(ble.ErrAdapterInvalidID, "tinygo: only %s is supported, use the goble backend for %q", defaultAdapterID, id)
	}

	return bluetooth.DefaultAdapter, nil
}

// propertyGetter is the part of dbus.BusObject needed to read a BlueZ property.
type propertyGetter interface {
	GetProperty(p string) (dbus.Variant, error)
}

// BlueZ publishes the link state as the Connected property of the device object.
func newLinkStatus(address bluetooth.Address, _ *bluetooth.Device) linkStatus {
	path := devicePath(defaultAdapterID, address.MAC.String())
	return func() (bool, error) {
		bus, err := dbus.SystemBus()
		if err != nil {
			return false, errors.Wrap(err, "tinygo: failed to connect to the system bus")
		}
		return bluezConnected(bus.Object("org.bluez", path))
	}
}

func devicePath(adapterID, mac string) dbus.ObjectPath {
	return dbus.ObjectPath("/org/bluez/" + adapterID + "/dev_" + strings.ReplaceAll(mac, ":", "_"))
}

// bluezConnected reads Device1.Connected. A device object BlueZ has already removed counts as
// disconnected.
func bluezConnected(device propertyGetter) (bool, error) {
	value, err := device.GetProperty("org.bluez.Device1.Connected")
	if err != nil {
		var dbusErr dbus.Error
		if errors.As(err, &dbusErr) && dbusErr.Name == "org.freedesktop.DBus.Error.UnknownObject" {
			return false, nil
		}
		return false, errors.Wrap(err, "tinygo: failed to read link state")
	}
	connected, ok := value.Value().(bool)
	if !ok {
		return false, errors.Errorf("tinygo: unexpected Connected value %v", value.Value())
	}
	return connected, nil
}
