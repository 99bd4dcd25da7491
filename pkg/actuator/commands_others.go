//go:build !windows && !linux && !darwin

package actuator

// DefaultCommands is empty on platforms without known automation tooling, so every action is
// reported as an unknown command.
func DefaultCommands() CommandSet {
	return CommandSet{}
}
