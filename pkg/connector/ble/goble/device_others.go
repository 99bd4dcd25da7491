//go:build !linux && !darwin

package goble

import (
	goble "github.com/go-ble/ble"
	"github.com/pkg/errors"
)

func IsAdapterError(_ error) bool {
	return false
}

func AdapterErrorHelpMessage(err error) string {
	return err.Error()
}

func newDevice(_ string) (goble.Device, error) {
	return nil, errors.New("goble: not supported on this platform, use -bt-backend=tinygo")
}
