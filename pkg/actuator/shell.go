// Package actuator performs host actions by launching the platform's automation tooling.
package actuator

import (
	"os/exec"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/dispatch"
)

// CommandSet maps an action to the command line that performs it. Command lines are split with
// POSIX shell quoting rules.
type CommandSet map[dispatch.Action]string

// Shell launches one process per action and does not wait for it. Processes started for codes
// that arrive in quick succession may overlap.
type Shell struct {
	commands CommandSet
	start    func(cmd *exec.Cmd) error
}

// NewShell returns a Shell using commands, or DefaultCommands if commands is nil.
func NewShell(commands CommandSet) *Shell {
	if commands == nil {
		commands = DefaultCommands()
	}
	return &Shell{
		commands: commands,
		start:    startDetached,
	}
}

func (s *Shell) Actuate(action dispatch.Action) error {
	line, ok := s.commands[action]
	if !ok {
		log.Info("Unknown command: %s", action)
		return nil
	}

	args, err := shlex.Split(line)
	if err != nil {
		return errors.Wrapf(err, "actuator: malformed command line for %s", action)
	}
	if len(args) == 0 {
		return errors.Errorf("actuator: empty command line for %s", action)
	}

	log.Debug("Running %q", args)
	if err := s.start(exec.Command(args[0], args[1:]...)); err != nil {
		return errors.Wrapf(err, "actuator: failed to start %s", args[0])
	}
	return nil
}

// startDetached starts cmd and reaps it in the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug("%s exited: %s", cmd.Path, err)
		}
	}()
	return nil
}
