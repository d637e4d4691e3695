// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package wizard models the combined Bible-content screen that walks
Story → Chapter → Verse for one product.

[Transition] is pure: it maps a [State] and an [Event] to the next state and
an [Effect], with no routing or I/O. [Wizard] is the driver that counts
children through the gateway and feeds the result in as a [Next] event.

Moving forward needs the parent of the next step to already have children;
otherwise the effect redirects to that child kind's own creation screen.
Moving back is always allowed.
*/
package wizard

import (
	"github.com/taibuivan/bibble/internal/content/form"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// Step is a position in the wizard.
type Step int

const (
	StepStory Step = iota
	StepChapter
	StepVerse
)

func (s Step) String() string {
	return string(s.Kind())
}

// Kind is the entity kind edited at this step.
func (s Step) Kind() hierarchy.Kind {
	switch s {
	case StepChapter:
		return hierarchy.KindChapter
	case StepVerse:
		return hierarchy.KindVerse
	default:
		return hierarchy.KindStory
	}
}

// # Mode

// Mode is either [CreateMode] or [EditMode].
type Mode interface {
	isMode()
}

// CreateMode means the step's form creates a new entity.
type CreateMode struct{}

// EditMode means the step's form edits the entity with ID.
type EditMode struct {
	ID string
}

func (CreateMode) isMode() {}
func (EditMode) isMode()   {}

// # State

// State is where the wizard is and what has been selected on the way.
type State struct {
	Step Step
	Mode Mode

	ProductID string
	StoryID   string
	ChapterID string
}

// Start returns the initial state for a product: creating a story.
func Start(productID string) State {
	return State{Step: StepStory, Mode: CreateMode{}, ProductID: productID}
}

// selection is the ID chosen at the current step, which parents the next step.
func (s State) selection() string {
	switch s.Step {
	case StepStory:
		return s.StoryID
	case StepChapter:
		return s.ChapterID
	}
	return ""
}

func (s State) withSelection(id string) State {
	switch s.Step {
	case StepStory:
		s.StoryID = id
	case StepChapter:
		s.ChapterID = id
	}
	return s
}

// # Events

// Event is one of [Next], [Previous], [BeginEdit] or [BeginCreate].
type Event interface {
	isEvent()
}

// Next asks to advance. Children is how many entities of the next step's
// kind exist under the current selection.
type Next struct {
	Children int
}

// Previous steps back.
type Previous struct{}

// BeginEdit opens the entity with ID at the current step and selects it.
type BeginEdit struct {
	ID string
}

// BeginCreate opens an empty form at the current step.
type BeginCreate struct{}

func (Next) isEvent()        {}
func (Previous) isEvent()    {}
func (BeginEdit) isEvent()   {}
func (BeginCreate) isEvent() {}

// # Effects

// EffectKind classifies what the caller must do after a transition.
type EffectKind int

const (
	// EffectNone: render the new state in place.
	EffectNone EffectKind = iota
	// EffectRedirect: leave the wizard for Destination.
	EffectRedirect
	// EffectRejected: the event is not allowed here; state is unchanged.
	EffectRejected
)

// Effect is the side effect requested by a transition.
type Effect struct {
	Kind        EffectKind
	Destination form.Destination
	Reason      string
}

// # Transition

// Transition computes the next state and effect. It never performs I/O.
func Transition(state State, event Event) (State, Effect) {
	switch event := event.(type) {
	case Next:
		if state.Step == StepVerse {
			return state, Effect{Kind: EffectRejected, Reason: "already at the last step"}
		}

		parentID := state.selection()
		if parentID == "" {
			return state, Effect{Kind: EffectRejected, Reason: "select a " + string(state.Step.Kind()) + " first"}
		}

		nextStep := state.Step + 1
		if event.Children < 1 {
			return state, Effect{
				Kind:        EffectRedirect,
				Destination: form.CreateUnder(nextStep.Kind(), parentID),
			}
		}

		state.Step = nextStep
		state.Mode = CreateMode{}
		return state, Effect{Kind: EffectNone}

	case Previous:
		if state.Step == StepStory {
			return state, Effect{Kind: EffectNone}
		}

		state = state.withSelection("")
		state.Step--
		state.Mode = CreateMode{}
		if id := state.selection(); id != "" {
			state.Mode = EditMode{ID: id}
		}
		return state, Effect{Kind: EffectNone}

	case BeginEdit:
		if event.ID == "" {
			return state, Effect{Kind: EffectRejected, Reason: "missing id"}
		}
		state = state.withSelection(event.ID)
		state.Mode = EditMode{ID: event.ID}
		return state, Effect{Kind: EffectNone}

	case BeginCreate:
		state.Mode = CreateMode{}
		return state, Effect{Kind: EffectNone}
	}

	return state, Effect{Kind: EffectRejected, Reason: "unknown event"}
}
