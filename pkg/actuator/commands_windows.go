package actuator

import "github.com/esp32remote/receiver/pkg/dispatch"

// DefaultCommands drives WScript.Shell SendKeys through PowerShell. The [char] values are the
// virtual key codes of the media keys.
func DefaultCommands() CommandSet {
	return CommandSet{
		dispatch.VolumeUp:         `powershell -Command "(new-object -com wscript.shell).SendKeys([char]175)"`,
		dispatch.VolumeDown:       `powershell -Command "(new-object -com wscript.shell).SendKeys([char]174)"`,
		dispatch.NextTrack:        `powershell -Command "(new-object -com wscript.shell).SendKeys([char]176)"`,
		dispatch.PreviousTrack:    `powershell -Command "(new-object -com wscript.shell).SendKeys([char]177)"`,
		dispatch.PlayPause:        `powershell -Command "(new-object -com wscript.shell).SendKeys([char]179)"`,
		dispatch.Enter:            `powershell -Command "(new-object -com wscript.shell).SendKeys('~')"`,
		dispatch.CloseApplication: `powershell -Command "(new-object -com wscript.shell).SendKeys('%{F4}')"`,
	}
}
