package goble

import (
	"context"
	stderrors "errors"

	goble "github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

type device struct {
	adapter goble.Device
	addr    goble.Addr
	client  goble.Client
}

func (d *device) IsConnected() (bool, error) {
	if d.client == nil {
		return false, nil
	}
	select {
	case <-d.client.Disconnected():
		return false, nil
	default:
		return true, nil
	}
}

func (d *device) Connect(ctx context.Context) error {
	log.Debug("Dialing %s...", d.addr)
	client, err := d.adapter.Dial(ctx, d.addr)
	if err != nil {
		return ble.NewError(ble.KindConnection, errors.Wrapf(err, "goble: dial %s", d.addr))
	}
	d.client = client
	log.Debug("Connected to %s", d.addr)
	return nil
}

func (d *device) Service(_ context.Context, id uuid.UUID) (ble.Service, error) {
	if d.client == nil {
		return nil, ble.NewError(ble.KindConnection, errors.Errorf("goble: %s is not connected", d.addr))
	}

	log.Debug("Discovering services %s...", d.addr)
	services, err := d.client.DiscoverServices(nil)
	if err != nil {
		return nil, ble.NewError(ble.KindConnection, errors.Wrap(err, "goble: failed to enumerate device services"))
	}

	target := toGobleUUID(id)
	for _, s := range services {
		if s.UUID.Equal(target) {
			return &service{client: d.client, service: s}, nil
		}
	}
	return nil, ble.NewError(ble.KindServiceNotFound, errors.Errorf("goble: %s does not expose service %s", d.addr, id))
}

func (d *device) Close() error {
	client := d.client
	d.client = nil
	if client == nil {
		return nil
	}

	err1 := client.ClearSubscriptions()
	err2 := client.CancelConnection()
	return errors.Wrap(stderrors.Join(err1, err2), "goble: close")
}

