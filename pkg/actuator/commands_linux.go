package actuator

import "github.com/esp32remote/receiver/pkg/dispatch"

// DefaultCommands uses xdotool, which needs an X11 session (or XWayland).
func DefaultCommands() CommandSet {
	return CommandSet{
		dispatch.VolumeUp:         "xdotool key XF86AudioRaiseVolume",
		dispatch.VolumeDown:       "xdotool key XF86AudioLowerVolume",
		dispatch.NextTrack:        "xdotool key XF86AudioNext",
		dispatch.PreviousTrack:    "xdotool key XF86AudioPrev",
		dispatch.PlayPause:        "xdotool key XF86AudioPlay",
		dispatch.Enter:            "xdotool key Return",
		dispatch.CloseApplication: "xdotool key alt+F4",
	}
}
