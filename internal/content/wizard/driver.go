// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wizard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/gateway"
)

// Wizard holds the current state and resolves child counts for [Next].
// Like a form controller, it belongs to one screen session.
type Wizard struct {
	gateway gateway.Gateway
	logger  *slog.Logger
	state   State
}

// New starts a wizard for productID at the story step.
func New(gw gateway.Gateway, productID string, logger *slog.Logger) *Wizard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Wizard{gateway: gw, logger: logger, state: Start(productID)}
}

// State returns the current state.
func (w *Wizard) State() State {
	return w.state
}

// Next counts the children of the current selection and advances or
// redirects. A failed count leaves the state unchanged and returns the error.
func (w *Wizard) Next(ctx context.Context) (Effect, error) {
	children, err := w.countChildren(ctx)
	if err != nil {
		w.logger.WarnContext(ctx, "wizard_child_count_failed",
			slog.String("step", w.state.Step.String()),
			slog.Any("error", err),
		)
		return Effect{}, fmt.Errorf("wizard: count children: %w", err)
	}
	return w.apply(Next{Children: children}), nil
}

// Previous steps back unconditionally.
func (w *Wizard) Previous() Effect {
	return w.apply(Previous{})
}

// BeginEdit selects and opens an existing entity at the current step.
func (w *Wizard) BeginEdit(id string) Effect {
	return w.apply(BeginEdit{ID: id})
}

// BeginCreate opens an empty form at the current step.
func (w *Wizard) BeginCreate() Effect {
	return w.apply(BeginCreate{})
}

func (w *Wizard) apply(event Event) Effect {
	next, effect := Transition(w.state, event)
	w.state = next
	return effect
}

func (w *Wizard) countChildren(ctx context.Context) (int, error) {
	switch w.state.Step {
	case StepStory:
		if w.state.StoryID == "" {
			return 0, nil
		}
		chapters, err := w.gateway.Chapters().ListByParent(ctx, w.state.StoryID)
		return len(chapters), err

	case StepChapter:
		if w.state.ChapterID == "" {
			return 0, nil
		}
		verses, err := w.gateway.Verses().ListByParent(ctx, w.state.ChapterID)
		return len(verses), err
	}
	return 0, nil
}
