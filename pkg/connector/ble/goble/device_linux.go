package goble

import (
	"strings"
	"time"

	goble "github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
	"github.com/go-ble/ble/linux/hci/cmd"
)

const bleTimeout = 20 * time.Second

// The ESP32 advertises its name in the scan response, so scanning must be active.
var scanParams = cmd.LESetScanParameters{
	LEScanType:           1,    // Active scanning
	LEScanInterval:       0x10, // 10ms
	LEScanWindow:         0x10, // 10ms
	OwnAddressType:       0,    // Public
	ScanningFilterPolicy: 0,    // Accept all
}

func IsAdapterError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "operation not permitted") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "no such device")
}

func AdapterErrorHelpMessage(err error) string {
	return "Failed to initialize BLE adapter: \n\t" + err.Error() + "\n" +
		"Raw HCI access requires CAP_NET_RAW and CAP_NET_ADMIN (e.g. sudo setcap 'cap_net_raw,cap_net_admin+eip' <binary>).\n" +
		"Make sure the adapter is powered and not claimed by bluetoothd, or run with -bt-backend=tinygo to go through BlueZ."
}

func newDevice(id string) (goble.Device, error) {
	opts := []goble.Option{
		goble.OptListenerTimeout(bleTimeout),
		goble.OptDialerTimeout(bleTimeout),
		goble.OptScanParams(scanParams),
	}
	if id != "" {
		n, err := parseDeviceID(id)
		if err != nil {
			return nil, err
		}
		opts = append(opts, goble.OptDeviceID(n))
	}

	device, err := linux.NewDevice(opts...)
	if err != nil {
		return nil, err
	}
	return device, nil
}
