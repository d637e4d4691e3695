// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

// State is the lifecycle position of one editing session.
//
//	Loading ──Loaded──▶ Editing ──Submit──▶ Submitting ──Succeeded──▶ Succeeded
//	   │                   ▲                   │  │
//	   └─LoadFailed─▶ Failed ◀────Failed───────┘  │
//	                    │  ▲                      │
//	                    └──┴──Resume──▶ Editing ◀─Invalid
type State int

const (
	Loading State = iota
	Editing
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event drives a [State] change.
type Event int

const (
	// EventLoaded: the draft is ready for editing.
	EventLoaded Event = iota
	// EventLoadFailed: the entity to edit could not be fetched.
	EventLoadFailed
	// EventSubmit: the user asked to save.
	EventSubmit
	// EventInvalid: local validation rejected the draft.
	EventInvalid
	// EventSucceeded: the gateway accepted the write.
	EventSucceeded
	// EventFailed: the gateway rejected the write or was unreachable.
	EventFailed
	// EventResume: the error was shown and the draft is editable again.
	EventResume
)

// Transition returns the state that follows from after event, and false when
// the event is not allowed in that state (the state is then returned as is).
func Transition(from State, event Event) (State, bool) {
	switch from {
	case Loading:
		switch event {
		case EventLoaded:
			return Editing, true
		case EventLoadFailed:
			return Failed, true
		}
	case Editing:
		if event == EventSubmit {
			return Submitting, true
		}
	case Submitting:
		switch event {
		case EventInvalid:
			return Editing, true
		case EventSucceeded:
			return Succeeded, true
		case EventFailed:
			return Failed, true
		}
	case Failed:
		if event == EventResume {
			return Editing, true
		}
	}
	return from, false
}
