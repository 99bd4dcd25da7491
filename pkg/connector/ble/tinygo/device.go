package tinygo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

// linkStatus asks the Bluetooth stack whether the link to a connected peripheral is still up.
type linkStatus func() (bool, error)

type device struct {
	adapter *adapter
	address bluetooth.Address
	key     string
	client  *bluetooth.Device
	status  linkStatus
}

// IsConnected trusts a disconnect reported through the connect handler and otherwise queries the
// stack. Only CoreBluetooth calls that handler when a link drops.
func (d *device) IsConnected() (bool, error) {
	if d.client == nil || !d.adapter.linkUp(d.key) {
		return false, nil
	}
	connected, err := d.status()
	if err != nil {
		return false, ble.NewError(ble.KindStatusQuery, err)
	}
	if !connected {
		log.Debug("Link to %s is down", d.key)
		d.adapter.setLink(d.key, false)
	}
	return connected, nil
}

func (d *device) Connect(ctx context.Context) error {
	log.Debug("Connecting to %s...", d.key)

	// The bluetooth library doesn't support context handling, so race the blocking Connect call
	// against ctx and drop a link that comes up after ctx is done.
	deviceCh := make(chan bluetooth.Device, 1)
	errorCh := make(chan error, 1)
	go func() {
		params := bluetooth.ConnectionParams{}
		if deadline, ok := ctx.Deadline(); ok {
			params.ConnectionTimeout = bluetooth.NewDuration(time.Until(deadline))
		}

		client, err := d.adapter.device.Connect(d.address, params)
		if err != nil {
			errorCh <- err
			return
		}
		if ctx.Err() == nil {
			deviceCh <- client
			return
		}
		if err := client.Disconnect(); err != nil {
			log.Warning("ble: failed to disconnect: %s", err)
		}
	}()

	select {
	case client := <-deviceCh:
		d.client = &client
		d.status = newLinkStatus(d.address, d.client)
		d.adapter.setLink(d.key, true)
		log.Debug("Connected to %s", d.key)
		return nil
	case err := <-errorCh:
		return ble.NewError(ble.KindConnection, errors.Wrapf(err, "tinygo: connect %s", d.key))
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *device) Service(_ context.Context, id uuid.UUID) (ble.Service, error) {
	if d.client == nil {
		return nil, ble.NewError(ble.KindConnection, errors.Errorf("tinygo: %s is not connected", d.key))
	}

	log.Debug("Discovering services %s...", d.key)
	services, err := d.client.DiscoverServices(nil)
	if err != nil {
		return nil, ble.NewError(ble.KindConnection, errors.Wrap(err, "tinygo: failed to enumerate device services"))
	}

	target := toBluetoothUUID(id)
	for _, s := range services {
		if s.UUID() == target {
			return &service{service: s}, nil
		}
	}
	return nil, ble.NewError(ble.KindServiceNotFound, errors.Errorf("tinygo: %s does not expose service %s", d.key, id))
}

func (d *device) Close() error {
	client := d.client
	d.client = nil
	d.status = nil
	if client == nil {
		return nil
	}
	d.adapter.setLink(d.key, false)
	return errors.Wrap(client.Disconnect(), "tinygo: disconnect")
}
