package tinygo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

// NewAdapter enables the adapter with the given ID, or the default adapter if id is empty.
func NewAdapter(id string) (ble.Adapter, error) {
	log.Debug("Creating new BLE adapter")
	device, err := newAdapter(id)
	if err != nil {
		return nil, ble.NewError(ble.KindNoAdapter, errors.Wrap(err, "tinygo: failed to create device"))
	}
	if err = device.Enable(); err != nil {
		if IsAdapterError(err) {
			log.Warning("%s", AdapterErrorHelpMessage(err))
		}
		return nil, ble.NewError(ble.KindNoAdapter, errors.Wrap(err, "tinygo: failed to enable device"))
	}

	a := &adapter{
		device: device,
		links:  make(map[string]bool),
	}
	device.SetConnectHandler(a.onConnect)
	return a, nil
}

type adapter struct {
	device *bluetooth.Adapter

	mu    sync.Mutex
	links map[string]bool
}

func (a *adapter) onConnect(d bluetooth.Device, connected bool) {
	log.Debug("Link to %s connected=%t", d.Address.String(), connected)
	a.setLink(d.Address.String(), connected)
}

func (a *adapter) setLink(address string, up bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.links[address] = up
}

func (a *adapter) linkUp(address string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.links[address]
}

func (a *adapter) stopScan() bool {
	if err := a.device.StopScan(); err != nil {
		if strings.Contains(err.Error(), "no scan in progress") {
			return true
		}
		log.Warning("ble: failed to stop scan: %s", err)
		return false
	}
	return true
}

func (a *adapter) Scan(ctx context.Context, settle time.Duration) ([]ble.Beacon, error) {
	// The bluetooth library doesn't support context handling, so make sure we don't start a scan
	// that would have to be stopped immediately.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.device == nil {
		return nil, ble.NewError(ble.KindNoAdapter, errors.New("tinygo: adapter closed"))
	}

	var mu sync.Mutex
	seen := make(ble.BeaconSet)

	// Scan is blocking, so run it in a goroutine
	scanFinished := make(chan error, 1)
	go func() {
		scanFinished <- a.device.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			mu.Lock()
			defer mu.Unlock()
			seen.Add(ble.Beacon{
				Address:     result.Address.String(),
				LocalName:   result.LocalName(),
				RSSI:        result.RSSI,
				Connectable: true,
			})
		})
	}()

	timer := time.NewTimer(settle)
	defer timer.Stop()

	select {
	case err := <-scanFinished:
		if err == nil {
			err = errors.New("scan stopped before settle period")
		}
		return nil, ble.NewError(ble.KindScan, errors.Wrap(err, "tinygo: scan"))
	case <-timer.C:
	case <-ctx.Done():
	}

	// Waiting for StopScan() is not enough, Scan() has to return before the adapter can connect.
	if a.stopScan() {
		<-scanFinished
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	log.Debug("Scan found %d peripherals", len(seen))
	return seen.List(), nil
}

func (a *adapter) Peripheral(beacon ble.Beacon) (ble.Device, error) {
	if a.device == nil {
		return nil, ble.NewError(ble.KindNoAdapter, errors.New("tinygo: adapter closed"))
	}
	addr, err := parseAddress(beacon.Address)
	if err != nil {
		return nil, ble.NewError(ble.KindConnection, err)
	}
	return &device{
		adapter: a,
		address: addr,
		key:     beacon.Address,
	}, nil
}

func (a *adapter) Close() error {
	if a.device == nil {
		return nil
	}
	a.device.SetConnectHandler(func(bluetooth.Device, bool) {})
	a.device = nil
	return nil
}
