package publish

import "fmt"

type State int

const (
	Idle State = iota
	Submitting
	Opening
	ShowingError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Opening:
		return "opening"
	case ShowingError:
		return "showing error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// StateObserver is notified after every transition.
type StateObserver func(from, to State)
