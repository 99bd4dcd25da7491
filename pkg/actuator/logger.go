package actuator

import (
	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/dispatch"
)

// Logger reports actions without performing them.
type Logger struct{}

func (Logger) Actuate(action dispatch.Action) error {
	log.Info("Dry run: %s", action)
	return nil
}
