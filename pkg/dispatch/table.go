package dispatch

import "sort"

// Code is a command code sent by the remote.
type Code int32

// Action names a host action. The names double as keys into an actuator's command set.
type Action string

const (
	VolumeUp         Action = "volumeup"
	VolumeDown       Action = "volumedown"
	NextTrack        Action = "nexttrack"
	PreviousTrack    Action = "previoustrack"
	PlayPause        Action = "playpause"
	Enter            Action = "enter"
	CloseApplication Action = "altf4"
)

var table = map[Code]Action{
	100: VolumeUp,
	150: VolumeDown,
	200: NextTrack,
	250: PreviousTrack,
	300: PlayPause,
	350: Enter,
	400: CloseApplication,
}

// Lookup returns the action bound to code.
func Lookup(code Code) (Action, bool) {
	action, ok := table[code]
	return action, ok
}

// Codes returns every bound code in ascending order.
func Codes() []Code {
	codes := make([]Code, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Actions returns every action in the table, ordered by code.
func Actions() []Action {
	var actions []Action
	for _, code := range Codes() {
		actions = append(actions, table[code])
	}
	return actions
}
