package goble

import (
	"context"
	"sync"
	"time"

	goble "github.com/go-ble/ble"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

// NewAdapter opens the HCI device with the given ID, or the first one if id is empty.
func NewAdapter(id string) (ble.Adapter, error) {
	log.Debug("Creating new BLE adapter")
	device, err := newDevice(id)
	if err != nil {
		if IsAdapterError(err) {
			log.Warning("%s", AdapterErrorHelpMessage(err))
		}
		return nil, ble.NewError(ble.KindNoAdapter, errors.Wrap(err, "goble: failed to open device"))
	}

	return &adapter{
		device: device,
	}, nil
}

type adapter struct {
	device goble.Device
}

func (a *adapter) Scan(ctx context.Context, settle time.Duration) ([]ble.Beacon, error) {
	scanCtx, cancel := context.WithTimeout(ctx, settle)
	defer cancel()

	var mu sync.Mutex
	seen := make(ble.BeaconSet)
	fn := func(adv goble.Advertisement) {
		mu.Lock()
		defer mu.Unlock()
		seen.Add(advertisementToBeacon(adv))
	}

	// device.Scan only returns once scanCtx is done, so a context error is the normal outcome.
	err := a.device.Scan(scanCtx, true, fn)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return nil, ble.NewError(ble.KindScan, errors.Wrap(err, "goble: scan"))
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
		return nil, ble.NewError(ble.KindNoAdapter, errors.New("goble: adapter closed"))
	}
	return &device{
		adapter: a.device,
		addr:    goble.NewAddr(beacon.Address),
	}, nil
}

func (a *adapter) Close() error {
	if a.device == nil {
		return nil
	}

	device := a.device
	a.device = nil
	if err := device.Stop(); err != nil {
		return errors.Wrap(err, "goble: failed to stop device")
	}
	log.Debug("Closed BLE adapter")
	return nil
}

func advertisementToBeacon(a goble.Advertisement) ble.Beacon {
	return ble.Beacon{
		Address:     a.Addr().String(),
		LocalName:   a.LocalName(),
		RSSI:        int16(a.RSSI()),
		Connectable: a.Connectable(),
	}
}
