package actuator

import "github.com/esp32remote/receiver/pkg/dispatch"

// DefaultCommands uses osascript. System Events needs the Accessibility permission; media
// transport goes to the Music app. Closing the front application maps to Command-Q.
func DefaultCommands() CommandSet {
	return CommandSet{
		dispatch.VolumeUp:         `osascript -e 'set volume output volume ((output volume of (get volume settings)) + 6)'`,
		dispatch.VolumeDown:       `osascript -e 'set volume output volume ((output volume of (get volume settings)) - 6)'`,
		dispatch.NextTrack:        `osascript -e 'tell application "Music" to next track'`,
		dispatch.PreviousTrack:    `osascript -e 'tell application "Music" to previous track'`,
		dispatch.PlayPause:        `osascript -e 'tell application "Music" to playpause'`,
		dispatch.Enter:            `osascript -e 'tell application "System Events" to key code 36'`,
		dispatch.CloseApplication: `osascript -e 'tell application "System Events" to keystroke "q" using command down'`,
	}
}
