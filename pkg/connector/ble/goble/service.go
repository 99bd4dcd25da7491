package goble

import (
	"context"

	goble "github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/pkg/connector"
	"github.com/esp32remote/receiver/pkg/connector/ble"
)

type service struct {
	client  goble.Client
	service *goble.Service
}

func (s *service) Characteristic(_ context.Context, id uuid.UUID) (ble.Characteristic, error) {
	characteristics, err := s.client.DiscoverCharacteristics(nil, s.service)
	if err != nil {
		return nil, ble.NewError(ble.KindConnection, errors.Wrap(err, "goble: failed to discover service characteristics"))
	}

	target := toGobleUUID(id)
	for _, c := range characteristics {
		if !c.UUID.Equal(target) {
			continue
		}
		// The CCCD has to be known before go-ble can enable notifications.
		if _, err := s.client.DiscoverDescriptors(nil, c); err != nil {
			return nil, ble.NewError(ble.KindConnection, errors.Wrap(err, "goble: couldn't fetch descriptors"))
		}
		source, err := fromGobleUUID(c.UUID)
		if err != nil {
			source = id
		}
		return &characteristic{client: s.client, characteristic: c, id: source}, nil
	}
	return nil, ble.NewError(ble.KindCharacteristicNotFound, errors.Errorf("goble: service has no characteristic %s", id))
}

type characteristic struct {
	client         goble.Client
	characteristic *goble.Characteristic
	id             uuid.UUID
}

func (c *characteristic) Subscribe(handler func(connector.Notification)) error {
	err := c.client.Subscribe(c.characteristic, false, func(buf []byte) {
		value := make([]byte, len(buf))
		copy(value, buf)
		handler(connector.Notification{Characteristic: c.id, Value: value})
	})
	if err != nil {
		return ble.NewError(ble.KindSubscription, errors.Wrap(err, "goble: failed to subscribe"))
	}
	return nil
}
