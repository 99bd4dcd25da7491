package session_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"go.uber.org/mock/gomock"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/mocks"
	"github.com/esp32remote/receiver/pkg/connector"
	"github.com/esp32remote/receiver/pkg/connector/ble"
	"github.com/esp32remote/receiver/pkg/dispatch"
	"github.com/esp32remote/receiver/pkg/session"
)

const (
	scanSettle       = time.Millisecond
	livenessInterval = 20 * time.Millisecond
	retryDelay       = 10 * time.Millisecond
)

var target = ble.Beacon{
	Address:     "24:0a:c4:00:00:01",
	LocalName:   session.PeripheralName,
	RSSI:        -60,
	Connectable: true,
}

var _ = Describe("Manager", func() {
	var (
		ctrl           *gomock.Controller
		adapter        *mocks.MockAdapter
		device         *mocks.MockDevice
		service        *mocks.MockService
		characteristic *mocks.MockCharacteristic
		dispatcher     *mocks.MockDispatcher
		manager        *session.Manager
		output         *gbytes.Buffer
		opens          atomic.Int32
		openErr        error
		handler        func(connector.Notification)
	)

	notify := func(id uuid.UUID, payload string) {
		handler(connector.Notification{Characteristic: id, Value: []byte(payload)})
	}

	expectEstablish := func() {
		adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{
			{Address: "11:22:33:44:55:66", LocalName: "Keyboard"},
			{Address: "11:22:33:44:55:67"},
			{Address: "11:22:33:44:55:68", LocalName: session.PeripheralName + "_2"},
			target,
		}, nil)
		adapter.EXPECT().Peripheral(target).Return(device, nil)
		device.EXPECT().IsConnected().Return(false, nil)
		device.EXPECT().Connect(gomock.Any()).Return(nil)
		device.EXPECT().Service(gomock.Any(), session.ServiceUUID).Return(service, nil)
		service.EXPECT().Characteristic(gomock.Any(), session.CharacteristicUUID).Return(characteristic, nil)
		characteristic.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(h func(connector.Notification)) error {
			handler = h
			return nil
		})
	}

	expectClose := func() {
		device.EXPECT().Close().Return(nil)
		adapter.EXPECT().Close().Return(nil)
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		adapter = mocks.NewMockAdapter(ctrl)
		device = mocks.NewMockDevice(ctrl)
		service = mocks.NewMockService(ctrl)
		characteristic = mocks.NewMockCharacteristic(ctrl)
		dispatcher = mocks.NewMockDispatcher(ctrl)
		opens.Store(0)
		openErr = nil
		handler = nil

		manager = session.NewManager(func(context.Context) (ble.Adapter, error) {
			opens.Add(1)
			if openErr != nil {
				return nil, openErr
			}
			return adapter, nil
		}, dispatcher)
		manager.Timing = session.Timing{
			ScanSettle:       scanSettle,
			LivenessInterval: livenessInterval,
			RetryDelay:       retryDelay,
		}

		output = gbytes.NewBuffer()
		log.SetOutput(output)
		DeferCleanup(log.SetOutput, os.Stderr)
	})

	It("uses the fixed identity and timing by default", func() {
		m := session.NewManager(nil, nil)
		Expect(m.Identity.Name).To(Equal("ESP32_Remote"))
		Expect(m.Identity.Service.String()).To(Equal("4fafc201-1fb5-459e-8fcc-c5c9c331914b"))
		Expect(m.Identity.Characteristic.String()).To(Equal("beb5483e-36e1-4688-b7f5-ea07361b26a8"))
		Expect(m.Timing).To(Equal(session.Timing{
			ScanSettle:       5 * time.Second,
			LivenessInterval: 10 * time.Second,
			RetryDelay:       5 * time.Second,
		}))
	})

	Describe("Establish", func() {
		It("subscribes to the configured characteristic", func() {
			expectEstablish()
			s, err := manager.Establish(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(s).NotTo(BeNil())
			Expect(handler).NotTo(BeNil())

			expectClose()
			s.Close()
			s.Close()
		})

		It("does not reconnect a peripheral that is already connected", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil)
			adapter.EXPECT().Peripheral(target).Return(device, nil)
			device.EXPECT().IsConnected().Return(true, nil)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).Return(service, nil)
			service.EXPECT().Characteristic(gomock.Any(), session.CharacteristicUUID).Return(characteristic, nil)
			characteristic.EXPECT().Subscribe(gomock.Any()).Return(nil)

			s, err := manager.Establish(context.Background())
			Expect(err).NotTo(HaveOccurred())
			expectClose()
			s.Close()
		})

		It("fails when no adapter is available", func() {
			openErr = errors.New("hci0: no such device")
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrNoAdapter))
			Expect(err).To(MatchError(ContainSubstring("no such device")))
		})

		It("keeps the kind reported by the backend", func() {
			openErr = ble.NewError(ble.KindNoAdapter, ble.ErrAdapterInvalidID)
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrNoAdapter))
			Expect(errors.Is(err, ble.ErrAdapterInvalidID)).To(BeTrue())
		})

		It("fails when the scan cannot start", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return(nil, errors.New("busy"))
			adapter.EXPECT().Close().Return(nil)
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrScan))
		})

		It("fails when the peripheral name is not seen", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{
				{Address: "11:22:33:44:55:66"},
				{Address: "11:22:33:44:55:67", LocalName: "esp32_remote"},
				{Address: "11:22:33:44:55:68", LocalName: "ESP32_Remote "},
			}, nil)
			adapter.EXPECT().Close().Return(nil)
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrPeripheralNotFound))
			Expect(err).To(MatchError(ContainSubstring("ESP32_Remote not found")))
		})

		It("fails when the connection cannot be established", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil)
			adapter.EXPECT().Peripheral(target).Return(device, nil)
			device.EXPECT().IsConnected().Return(false, nil)
			device.EXPECT().Connect(gomock.Any()).Return(errors.New("page timeout"))
			device.EXPECT().Close().Return(nil)
			adapter.EXPECT().Close().Return(nil)
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrConnection))
		})

		It("fails when the service is missing", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil)
			adapter.EXPECT().Peripheral(target).Return(device, nil)
			device.EXPECT().IsConnected().Return(false, nil)
			device.EXPECT().Connect(gomock.Any()).Return(nil)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).
				Return(nil, ble.NewError(ble.KindServiceNotFound, errors.New("not exposed")))
			expectClose()
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrServiceNotFound))
		})

		It("fails when the characteristic is missing", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil)
			adapter.EXPECT().Peripheral(target).Return(device, nil)
			device.EXPECT().IsConnected().Return(false, nil)
			device.EXPECT().Connect(gomock.Any()).Return(nil)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).Return(service, nil)
			service.EXPECT().Characteristic(gomock.Any(), session.CharacteristicUUID).Return(nil, errors.New("no such characteristic"))
			expectClose()
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrCharacteristicNotFound))
		})

		It("fails when notifications cannot be enabled", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil)
			adapter.EXPECT().Peripheral(target).Return(device, nil)
			device.EXPECT().IsConnected().Return(false, nil)
			device.EXPECT().Connect(gomock.Any()).Return(nil)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).Return(service, nil)
			service.EXPECT().Characteristic(gomock.Any(), session.CharacteristicUUID).Return(characteristic, nil)
			characteristic.EXPECT().Subscribe(gomock.Any()).Return(errors.New("CCCD write failed"))
			expectClose()
			_, err := manager.Establish(context.Background())
			Expect(err).To(MatchError(ble.ErrSubscription))
		})
	})

	Describe("Serve", func() {
		var (
			s      *session.Session
			ctx    context.Context
			cancel context.CancelFunc
			done   chan error
		)

		BeforeEach(func() {
			expectEstablish()
			var err error
			s, err = manager.Establish(context.Background())
			Expect(err).NotTo(HaveOccurred())
			expectClose()

			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan error, 1)
			DeferCleanup(func() {
				cancel()
				Eventually(done).Should(Receive())
				s.Close()
			})
		})

		serve := func() {
			go func() {
				defer GinkgoRecover()
				done <- s.Serve(ctx)
			}()
		}

		It("dispatches decoded codes in arrival order", func() {
			device.EXPECT().IsConnected().Return(true, nil).AnyTimes()
			received := make(chan dispatch.Code, 10)
			dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(code dispatch.Code) {
				received <- code
			}).Times(3)
			serve()

			notify(session.CharacteristicUUID, "300\n")
			notify(session.CharacteristicUUID, " 100 ")
			notify(session.CharacteristicUUID, "999")

			Eventually(received).Should(Receive(Equal(dispatch.Code(300))))
			Eventually(received).Should(Receive(Equal(dispatch.Code(100))))
			Eventually(received).Should(Receive(Equal(dispatch.Code(999))))
			Expect(output).To(gbytes.Say("Received code: 300"))
		})

		It("ignores malformed payloads", func() {
			device.EXPECT().IsConnected().Return(true, nil).AnyTimes()
			received := make(chan dispatch.Code, 10)
			dispatcher.EXPECT().Dispatch(dispatch.Code(200)).Do(func(code dispatch.Code) {
				received <- code
			}).Times(1)
			serve()

			handler(connector.Notification{Characteristic: session.CharacteristicUUID, Value: []byte{0xff, 0xfe}})
			notify(session.CharacteristicUUID, "play")
			notify(session.CharacteristicUUID, "")
			notify(session.CharacteristicUUID, "1.5")
			notify(session.CharacteristicUUID, "99999999999")
			notify(session.CharacteristicUUID, "200")

			Eventually(received).Should(Receive(Equal(dispatch.Code(200))))
			Consistently(received, 3*livenessInterval).ShouldNot(Receive())
		})

		It("ignores notifications from other characteristics", func() {
			device.EXPECT().IsConnected().Return(true, nil).AnyTimes()
			received := make(chan dispatch.Code, 10)
			dispatcher.EXPECT().Dispatch(dispatch.Code(150)).Do(func(code dispatch.Code) {
				received <- code
			}).Times(1)
			serve()

			notify(uuid.MustParse("00002a19-0000-1000-8000-00805f9b34fb"), "100")
			notify(session.CharacteristicUUID, "150")

			Eventually(received).Should(Receive(Equal(dispatch.Code(150))))
			Consistently(received, 3*livenessInterval).ShouldNot(Receive())
		})

		It("ends normally once the peripheral reports it is disconnected", func() {
			gomock.InOrder(
				device.EXPECT().IsConnected().Return(true, nil),
				device.EXPECT().IsConnected().Return(false, nil),
			)
			serve()

			var err error
			Eventually(done).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(gbytes.Say("Connection lost"))
			done <- nil
		})

		It("fails when the connection status cannot be queried", func() {
			device.EXPECT().IsConnected().Return(false, errors.New("dbus: connection closed"))
			serve()

			var err error
			Eventually(done).Should(Receive(&err))
			Expect(err).To(MatchError(ble.ErrStatusQuery))
			done <- nil
		})

		It("returns when the context is cancelled", func() {
			device.EXPECT().IsConnected().Return(true, nil).AnyTimes()
			serve()
			cancel()

			var err error
			Eventually(done).Should(Receive(&err))
			Expect(err).To(MatchError(context.Canceled))
			done <- nil
		})
	})

	Describe("Run", func() {
		var (
			ctx    context.Context
			cancel context.CancelFunc
			done   chan error
		)

		BeforeEach(func() {
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan error, 1)
			DeferCleanup(func() {
				cancel()
				Eventually(done).Should(Receive())
			})
		})

		run := func() {
			go func() {
				defer GinkgoRecover()
				done <- manager.Run(ctx)
			}()
		}

		It("rediscovers the peripheral from scratch after it disconnects", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil).MinTimes(2)
			adapter.EXPECT().Peripheral(target).Return(device, nil).MinTimes(2)
			device.EXPECT().IsConnected().Return(false, nil).MinTimes(2)
			device.EXPECT().Connect(gomock.Any()).Return(nil).MinTimes(2)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).Return(service, nil).MinTimes(2)
			service.EXPECT().Characteristic(gomock.Any(), session.CharacteristicUUID).Return(characteristic, nil).MinTimes(2)
			characteristic.EXPECT().Subscribe(gomock.Any()).Return(nil).MinTimes(2)
			device.EXPECT().Close().Return(nil).MinTimes(2)
			adapter.EXPECT().Close().Return(nil).MinTimes(2)
			run()

			Eventually(opens.Load).Should(BeNumerically(">=", 3))
			Expect(output).To(gbytes.Say("Connection lost"))
			Expect(output).To(gbytes.Say("Connection closed. Reconnecting..."))
			cancel()

			var err error
			Eventually(done).Should(Receive(&err))
			Expect(err).To(MatchError(context.Canceled))
			done <- nil
		})

		It("retries indefinitely after errors", func() {
			openErr = errors.New("no adapters")
			run()

			Eventually(opens.Load).Should(BeNumerically(">=", 3))
			Expect(output).To(gbytes.Say("Error: ble: no Bluetooth adapter available: no adapters. Retrying in 10ms..."))
		})

		It("suggests enabling Bluetooth when no adapter is available", func() {
			openErr = errors.New("no adapters")
			run()

			Eventually(output).Should(gbytes.Say("Check that Bluetooth is enabled on this host"))
		})

		It("waits the retry delay between attempts", func() {
			openErr = errors.New("no adapters")
			manager.Timing.RetryDelay = 200 * time.Millisecond
			run()

			Eventually(opens.Load).Should(BeEquivalentTo(1))
			Consistently(opens.Load, 100*time.Millisecond).Should(BeEquivalentTo(1))
			Eventually(opens.Load, time.Second).Should(BeEquivalentTo(2))
		})

		It("hints at a firmware mismatch when the service is missing", func() {
			adapter.EXPECT().Scan(gomock.Any(), scanSettle).Return([]ble.Beacon{target}, nil).MinTimes(1)
			adapter.EXPECT().Peripheral(target).Return(device, nil).MinTimes(1)
			device.EXPECT().IsConnected().Return(true, nil).MinTimes(1)
			device.EXPECT().Service(gomock.Any(), session.ServiceUUID).
				Return(nil, ble.NewError(ble.KindServiceNotFound, errors.New("not exposed"))).MinTimes(1)
			device.EXPECT().Close().Return(nil).MinTimes(1)
			adapter.EXPECT().Close().Return(nil).MinTimes(1)
			run()

			Eventually(output).Should(gbytes.Say("Check that the peripheral firmware exposes service"))
		})
	})
})
