package tinygo

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/esp32remote/receiver/pkg/connector"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

type service struct {
	service bluetooth.DeviceService
}

func (s *service) Characteristic(_ context.Context, id uuid.UUID) (ble.Characteristic, error) {
	characteristics, err := s.service.DiscoverCharacteristics(nil)
	if err != nil {
		return nil, ble.NewError(ble.KindConnection, errors.Wrap(err, "tinygo: failed to discover service characteristics"))
	}

	target := toBluetoothUUID(id)
	for _, c := range characteristics {
		if c.UUID() != target {
			continue
		}
		source, err := fromBluetoothUUID(c.UUID())
		if err != nil {
			source = id
		}
		return &characteristic{characteristic: c, id: source}, nil
	}
	return nil, ble.NewError(ble.KindCharacteristicNotFound, errors.Errorf("tinygo: service has no characteristic %s", id))
}

type characteristic struct {
	characteristic bluetooth.DeviceCharacteristic
	id             uuid.UUID
}

func (c *characteristic) Subscribe(handler func(connector.Notification)) error {
	err := c.characteristic.EnableNotifications(func(buf []byte) {
		value := make([]byte, len(buf))
		copy(value, buf)
		handler(connector.Notification{Characteristic: c.id, Value: value})
	})
	if err != nil {
		return ble.NewError(ble.KindSubscription, errors.Wrap(err, "tinygo: failed to subscribe"))
	}
	return nil
}
