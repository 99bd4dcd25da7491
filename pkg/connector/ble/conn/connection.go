package conn

import (
	"sync"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/connector"
)

// Feed carries notifications from a transport callback to the goroutine serving the session.
// Notifications are delivered in arrival order. Once the feed is closed, Rx returns immediately
// so transport goroutines never block on a finished session.
type Feed struct {
	inbox chan connector.Notification
	done  chan struct{}
	once  sync.Once
}

func NewFeed() *Feed {
	return &Feed{
		inbox: make(chan connector.Notification, connector.BufferSize),
		done:  make(chan struct{}),
	}
}

// Receive returns the channel notifications are delivered on. It is never closed.
func (f *Feed) Receive() <-chan connector.Notification {
	return f.inbox
}

// Rx is the transport callback. It takes ownership of n.Value.
func (f *Feed) Rx(n connector.Notification) {
	select {
	case <-f.done:
		return
	default:
	}
	log.Debug("RX %s: %q", n.Characteristic, n.Value)
	select {
	case f.inbox <- n:
	case <-f.done:
	}
}

// Close stops the feed from accepting notifications. Repeated calls are harmless.
func (f *Feed) Close() {
	f.once.Do(func() {
		close(f.done)
	})
}
