package actuator

import (
	"errors"
	"os"
	"os/exec"
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/dispatch"
)

var _ = Describe("Shell", func() {
	var (
		shell   *Shell
		started [][]string
		output  *gbytes.Buffer
	)

	BeforeEach(func() {
		started = nil
		shell = NewShell(CommandSet{
			dispatch.Enter:     `powershell -Command "(new-object -com wscript.shell).SendKeys('~')"`,
			dispatch.PlayPause: "xdotool key XF86AudioPlay",
			dispatch.VolumeUp:  `osascript -e 'unterminated`,
			dispatch.NextTrack: "   ",
		})
		shell.start = func(cmd *exec.Cmd) error {
			started = append(started, cmd.Args)
			return nil
		}

		output = gbytes.NewBuffer()
		log.SetOutput(output)
		DeferCleanup(log.SetOutput, os.Stderr)
	})

	It("splits command lines with shell quoting", func() {
		Expect(shell.Actuate(dispatch.Enter)).To(Succeed())
		Expect(shell.Actuate(dispatch.PlayPause)).To(Succeed())
		Expect(started).To(Equal([][]string{
			{"powershell", "-Command", "(new-object -com wscript.shell).SendKeys('~')"},
			{"xdotool", "key", "XF86AudioPlay"},
		}))
	})

	It("starts one process per action", func() {
		for i := 0; i < 3; i++ {
			Expect(shell.Actuate(dispatch.PlayPause)).To(Succeed())
		}
		Expect(started).To(HaveLen(3))
	})

	It("logs actions without a command and carries on", func() {
		Expect(shell.Actuate(dispatch.CloseApplication)).To(Succeed())
		Expect(started).To(BeEmpty())
		Expect(output).To(gbytes.Say("Unknown command: altf4"))
	})

	It("rejects malformed command lines", func() {
		Expect(shell.Actuate(dispatch.VolumeUp)).To(MatchError(ContainSubstring("malformed command line for volumeup")))
		Expect(shell.Actuate(dispatch.NextTrack)).To(MatchError(ContainSubstring("empty command line for nexttrack")))
		Expect(started).To(BeEmpty())
	})

	It("reports processes that cannot be started", func() {
		shell.start = func(*exec.Cmd) error {
			return exec.ErrNotFound
		}
		err := shell.Actuate(dispatch.PlayPause)
		Expect(err).To(MatchError(ContainSubstring("failed to start xdotool")))
		Expect(errors.Is(err, exec.ErrNotFound)).To(BeTrue())
	})

	It("launches real processes in the background", func() {
		Expect(startDetached(exec.Command("remote-receiver-no-such-binary"))).NotTo(Succeed())
	})
})

var _ = Describe("DefaultCommands", func() {
	It("covers every action on supported platforms", func() {
		switch runtime.GOOS {
		case "windows", "linux", "darwin":
		default:
			Skip("no automation tooling on " + runtime.GOOS)
		}
		commands := DefaultCommands()
		for _, action := range dispatch.Actions() {
			Expect(commands).To(HaveKey(action))
			Expect(commands[action]).NotTo(BeEmpty())
		}
	})

	It("is used when no commands are given", func() {
		Expect(NewShell(nil).commands).To(Equal(DefaultCommands()))
	})
})

var _ = Describe("Logger", func() {
	It("reports the action instead of performing it", func() {
		output := gbytes.NewBuffer()
		log.SetOutput(output)
		DeferCleanup(log.SetOutput, os.Stderr)

		Expect(Logger{}.Actuate(dispatch.PlayPause)).To(Succeed())
		Expect(output).To(gbytes.Say("Dry run: playpause"))
	})
})
