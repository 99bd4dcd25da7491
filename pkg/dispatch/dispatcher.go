// Package dispatch translates command codes received from the remote into host actions.
package dispatch

import (
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
)

// Actuator performs a host action.
//
// Implementations launch the action and return once it has started; an error means the action
// could not be started at all.
type Actuator interface {
	Actuate(action Action) error
}

// Dispatcher looks codes up in the fixed command table and hands matches to an Actuator.
type Dispatcher struct {
	actuator Actuator
	abort    func(error)
}

func New(actuator Actuator) *Dispatcher {
	return &Dispatcher{
		actuator: actuator,
		abort:    fatal,
	}
}

// SetAbortHandler replaces the function called when the actuator cannot start an action. The
// default logs the error and exits the process: the reconnect loop cannot repair a broken host
// automation environment.
func (d *Dispatcher) SetAbortHandler(abort func(error)) {
	d.abort = abort
}

// Dispatch performs the action bound to code. Unknown codes are logged and dropped.
func (d *Dispatcher) Dispatch(code Code) {
	action, ok := Lookup(code)
	if !ok {
		log.Info("Unknown code: %d", code)
		return
	}

	log.Debug("Code %d maps to %s", code, action)
	if err := d.actuator.Actuate(action); err != nil {
		d.abort(errors.Wrapf(err, "failed to execute %s command", action))
	}
}

func fatal(err error) {
	log.Fatal("%s", err)
}
