// Package session keeps a subscription to the remote's command characteristic alive.
//
// A [Manager] runs attempts back to back. Each attempt opens the adapter, scans, connects,
// resolves the characteristic and subscribes, then serves notifications until the link drops or
// an error occurs. Nothing survives between attempts: every retry starts with a fresh scan.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector"
	"github.com/esp32remote/receiver/pkg/connector/ble"
	"github.com/esp32remote/receiver/pkg/connector/ble/conn"
	"github.com/esp32remote/receiver/pkg/dispatch"
)

// Dispatcher receives every successfully decoded code.
type Dispatcher interface {
	Dispatch(code dispatch.Code)
}

type Manager struct {
	Identity Identity
	Timing   Timing

	open       ble.Opener
	dispatcher Dispatcher
}

func NewManager(open ble.Opener, dispatcher Dispatcher) *Manager {
	return &Manager{
		Identity:   DefaultIdentity,
		Timing:     DefaultTiming,
		open:       open,
		dispatcher: dispatcher,
	}
}

// Session is one established subscription. It is owned by a single goroutine.
type Session struct {
	identity   Identity
	timing     Timing
	dispatcher Dispatcher

	adapter ble.Adapter
	device  ble.Device
	feed    *conn.Feed
}

// Run repeats RunOnce until ctx is done, pausing Timing.RetryDelay after every attempt whether
// it ended normally or with an error. It only returns ctx.Err().
func (m *Manager) Run(ctx context.Context) error {
	for {
		err := m.RunOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			log.Error("Error: %s. Retrying in %s...", err, m.Timing.RetryDelay)
			log.Debug("%+v", err)
			if hint := m.hint(err); hint != "" {
				log.Warning("%s", hint)
			}
		} else {
			log.Info("Connection closed. Reconnecting...")
		}

		timer := time.NewTimer(m.Timing.RetryDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// hint suggests what the operator can check for failures that retrying alone rarely fixes.
func (m *Manager) hint(err error) string {
	var bleErr *ble.Error
	if errors.As(err, &bleErr) && !bleErr.Temporary() {
		return fmt.Sprintf("Check that the peripheral firmware exposes service %s with characteristic %s",
			m.Identity.Service, m.Identity.Characteristic)
	}
	if ble.KindOf(err) == ble.KindNoAdapter {
		return "Check that Bluetooth is enabled on this host"
	}
	return ""
}

// RunOnce establishes a session, serves it until it ends and releases it. A nil error means the
// peripheral disconnected.
func (m *Manager) RunOnce(ctx context.Context) error {
	s, err := m.Establish(ctx)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Serve(ctx)
}

// Establish opens the adapter and subscribes to the configured characteristic.
func (m *Manager) Establish(ctx context.Context) (*Session, error) {
	adapter, err := m.open(ctx)
	if err != nil {
		return nil, ble.Classify(ble.KindNoAdapter, err)
	}
	if adapter == nil {
		return nil, ble.NewError(ble.KindNoAdapter, errors.New("no Bluetooth adapters found"))
	}

	s := &Session{
		identity:   m.Identity,
		timing:     m.Timing,
		dispatcher: m.dispatcher,
		adapter:    adapter,
	}
	if err := s.establish(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) establish(ctx context.Context) error {
	log.Debug("Scanning for %s (%s)...", s.identity.Name, s.timing.ScanSettle)
	beacons, err := s.adapter.Scan(ctx, s.timing.ScanSettle)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ble.Classify(ble.KindScan, err)
	}

	beacon, ok := ble.FindByName(beacons, s.identity.Name)
	if !ok {
		return ble.NewError(ble.KindPeripheralNotFound, errors.Errorf("%s not found", s.identity.Name))
	}
	log.Debug("Found %s at %s (RSSI %d)", beacon.LocalName, beacon.Address, beacon.RSSI)

	device, err := s.adapter.Peripheral(beacon)
	if err != nil {
		return ble.Classify(ble.KindConnection, err)
	}
	s.device = device

	connected, err := device.IsConnected()
	if err != nil {
		return ble.Classify(ble.KindConnection, err)
	}
	if !connected {
		if err := device.Connect(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ble.Classify(ble.KindConnection, err)
		}
	}

	service, err := device.Service(ctx, s.identity.Service)
	if err != nil {
		return ble.Classify(ble.KindServiceNotFound, err)
	}
	characteristic, err := service.Characteristic(ctx, s.identity.Characteristic)
	if err != nil {
		return ble.Classify(ble.KindCharacteristicNotFound, err)
	}

	s.feed = conn.NewFeed()
	if err := characteristic.Subscribe(s.feed.Rx); err != nil {
		return ble.Classify(ble.KindSubscription, err)
	}

	log.Info("Connected to %s (%s)", s.identity.Name, beacon.Address)
	return nil
}

// Serve forwards codes to the dispatcher until the peripheral disconnects (nil), the link state
// cannot be queried, or ctx is done. Each iteration waits for whichever comes first: a
// notification or a quiet LivenessInterval, after which the link state is queried.
func (s *Session) Serve(ctx context.Context) error {
	for {
		timer := time.NewTimer(s.timing.LivenessInterval)
		select {
		case n := <-s.feed.Receive():
			timer.Stop()
			s.handle(n)
		case <-timer.C:
			connected, err := s.device.IsConnected()
			if err != nil {
				return ble.Classify(ble.KindStatusQuery, err)
			}
			if !connected {
				log.Info("Connection lost. Attempting to reconnect...")
				return nil
			}
			log.Debug("%s still connected", s.identity.Name)
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func (s *Session) handle(n connector.Notification) {
	if n.Characteristic != s.identity.Characteristic {
		log.Debug("Ignoring notification from %s", n.Characteristic)
		return
	}
	code, ok := DecodeCode(n.Value)
	if !ok {
		log.Debug("Ignoring malformed payload %q", n.Value)
		return
	}
	log.Info("Received code: %d", code)
	s.dispatcher.Dispatch(code)
}

// Close unsubscribes, disconnects and releases the adapter. It is safe to call more than once.
func (s *Session) Close() {
	if s.feed != nil {
		s.feed.Close()
	}
	if s.device != nil {
		if err := s.device.Close(); err != nil {
			log.Warning("ble: failed to close device: %s", err)
		}
		s.device = nil
	}
	if s.adapter != nil {
		if err := s.adapter.Close(); err != nil {
			log.Warning("ble: failed to close adapter: %s", err)
		}
		s.adapter = nil
	}
}
