/*
Package cli builds the runtime pieces of the receiver from command-line flags (using the Golang
flag package) and environment variable equivalents.

# Examples

	config, err := cli.NewConfig()
	if err != nil {
		panic(err)
	}
	config.RegisterCommandLineFlags() // Adds -debug, -bt-backend, -dry-run, ...
	flag.Parse()
	config.ReadFromEnvironment() // Fills in missing fields using environment variables

	opener, err := config.NewAdapterOpener()
	if err != nil {
		panic(err)
	}
	dispatcher := dispatch.New(config.NewActuator())

The peripheral identity and the command table are not configurable.
*/
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/actuator"
	"github.com/esp32remote/receiver/pkg/connector/ble"
	"github.com/esp32remote/receiver/pkg/connector/ble/goble"
	"github.com/esp32remote/receiver/pkg/connector/ble/tinygo"
	"github.com/esp32remote/receiver/pkg/dispatch"
)

// Environment variable names used by [Config.ReadFromEnvironment] to set common parameters.
const (
	EnvRemoteDebug     = "REMOTE_DEBUG"
	EnvRemoteBtBackend = "REMOTE_BT_BACKEND"
	EnvRemoteBtAdapter = "REMOTE_BT_ADAPTER"
	EnvRemoteDryRun    = "REMOTE_DRY_RUN"
)

// Backend names a Bluetooth implementation.
type Backend string

const (
	BackendGoBLE  Backend = "goble"
	BackendTinyGo Backend = "tinygo"
)

var backends = []Backend{BackendGoBLE, BackendTinyGo}

// DefaultBackend returns the backend used when none is configured. go-ble has no Windows support.
func DefaultBackend() Backend {
	if runtime.GOOS == "windows" {
		return BackendTinyGo
	}
	return BackendGoBLE
}

// Set updates a Backend from a command-line argument.
func (b *Backend) Set(value string) error {
	canonicalName := Backend(strings.ToLower(value))
	for _, known := range backends {
		if canonicalName == known {
			*b = known
			return nil
		}
	}
	return fmt.Errorf("unknown Bluetooth backend '%s'", value)
}

func (b *Backend) String() string {
	return string(*b)
}

// Config fields determine which Bluetooth backend and actuator the receiver uses.
type Config struct {
	Debug       bool    // Enable debug logging
	BtBackend   Backend // Empty selects DefaultBackend
	BtAdapterID string  // Empty selects the first adapter
	DryRun      bool    // Log actions instead of performing them
}

func NewConfig() (*Config, error) {
	return &Config{}, nil
}

func (c *Config) RegisterCommandLineFlags() {
	c.registerFlags(flag.CommandLine)
}

func (c *Config) registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Debug, "debug", false, "Enable debug logging of scans, GATT discovery and notifications. Defaults to $REMOTE_DEBUG.")
	fs.Var(&c.BtBackend, "bt-backend", "Bluetooth `backend` (goble|tinygo). Defaults to $REMOTE_BT_BACKEND, then "+string(DefaultBackend())+".")
	fs.BoolVar(&c.DryRun, "dry-run", false, "Log actions instead of simulating keystrokes. Defaults to $REMOTE_DRY_RUN.")
	c.registerFlagsOsSpecific(fs)
}

// ReadFromEnvironment populates c using environment variables. Values that are already populated
// are not overwritten.
//
// Calling ReadFromEnvironment after flag.Parse() will prevent the environment from overriding
// explicit command-line parameters.
func (c *Config) ReadFromEnvironment() {
	if !c.Debug {
		_, c.Debug = os.LookupEnv(EnvRemoteDebug)
	}
	if c.BtBackend == "" {
		if value, ok := os.LookupEnv(EnvRemoteBtBackend); ok {
			if err := c.BtBackend.Set(value); err != nil {
				log.Warning("Ignoring $%s: %s", EnvRemoteBtBackend, err)
			} else {
				log.Debug("Set Bluetooth backend to '%s'", c.BtBackend)
			}
		}
	}
	if c.BtAdapterID == "" {
		c.BtAdapterID = os.Getenv(EnvRemoteBtAdapter)
		log.Debug("Set Bluetooth adapter to '%s'", c.BtAdapterID)
	}
	if !c.DryRun {
		_, c.DryRun = os.LookupEnv(EnvRemoteDryRun)
	}
}

// LogLevel returns the level the global logger should run at.
func (c *Config) LogLevel() log.Level {
	if c.Debug {
		return log.LevelDebug
	}
	return log.LevelInfo
}

// Backend returns the configured backend, falling back to DefaultBackend.
func (c *Config) Backend() Backend {
	if c.BtBackend == "" {
		return DefaultBackend()
	}
	return c.BtBackend
}

// NewAdapterOpener returns a function that opens a fresh adapter on every call, as the session
// manager acquires the adapter anew for each attempt.
func (c *Config) NewAdapterOpener() (ble.Opener, error) {
	id := c.BtAdapterID
	switch backend := c.Backend(); backend {
	case BackendGoBLE:
		return func(context.Context) (ble.Adapter, error) {
			return goble.NewAdapter(id)
		}, nil
	case BackendTinyGo:
		return func(context.Context) (ble.Adapter, error) {
			return tinygo.NewAdapter(id)
		}, nil
	default:
		return nil, fmt.Errorf("unknown Bluetooth backend '%s'", backend)
	}
}

// NewActuator returns the actuator for this host.
func (c *Config) NewActuator() dispatch.Actuator {
	if c.DryRun {
		return actuator.Logger{}
	}
	return actuator.NewShell(nil)
}
