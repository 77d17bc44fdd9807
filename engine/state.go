package engine

import "fmt"

// State is the canvas lifecycle phase
type State uint32

const (
	StateIdle State = iota
	StateRunning
	StateCancelled
)

var stateNames = [...]string{
	StateIdle:      "idle",
	StateRunning:   "running",
	StateCancelled: "cancelled",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}
