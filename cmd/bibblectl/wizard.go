// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/wizard"
)

const wizardHelp = `wizard commands:
  list       show entities at the current step
  edit <id>  select an entity at the current step
  create     start a new entity at the current step
  next       go to the next step
  prev       go back one step
  state      show where the wizard is
  quit
`

// stateView is how a wizard position is printed.
type stateView struct {
	Step      string `json:"step"`
	Mode      string `json:"mode"`
	EditingID string `json:"editingId,omitempty"`
	ProductID string `json:"productId"`
	StoryID   string `json:"storyId,omitempty"`
	ChapterID string `json:"chapterId,omitempty"`
}

func viewOf(state wizard.State) stateView {
	view := stateView{
		Step:      state.Step.String(),
		Mode:      "create",
		ProductID: state.ProductID,
		StoryID:   state.StoryID,
		ChapterID: state.ChapterID,
	}
	if edit, ok := state.Mode.(wizard.EditMode); ok {
		view.Mode, view.EditingID = "edit", edit.ID
	}
	return view
}

// runWizard reads wizard commands from stdin, one per line, until quit or EOF.
func (a *app) runWizard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("wizard needs a product id")
	}

	product, err := a.gateway.Products().Get(ctx, args[0])
	if err != nil {
		return err
	}
	if product.Type != hierarchy.ProductBook {
		return fmt.Errorf("the wizard only walks book products; %s is a %s", product.ID, product.Type)
	}

	w := wizard.New(a.gateway, product.ID, a.logger)
	screen := terminal{out: a.errOut}
	fmt.Fprint(a.errOut, wizardHelp)

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var effect wizard.Effect
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "state":
			if err := a.print(viewOf(w.State())); err != nil {
				return err
			}
			continue
		case "list":
			if err := a.listStep(ctx, w.State()); err != nil {
				screen.Error(describe(err))
			}
			continue
		case "next":
			effect, err = w.Next(ctx)
			if err != nil {
				screen.Error(describe(err))
				continue
			}
		case "prev":
			effect = w.Previous()
		case "create":
			effect = w.BeginCreate()
		case "edit":
			if len(fields) != 2 {
				screen.Error("edit needs an id")
				continue
			}
			effect = w.BeginEdit(fields[1])
		default:
			screen.Error(fmt.Sprintf("unknown wizard command %q", fields[0]))
			continue
		}

		switch effect.Kind {
		case wizard.EffectRedirect:
			screen.Navigate(effect.Destination)
		case wizard.EffectRejected:
			screen.Error(effect.Reason)
		default:
			if err := a.print(viewOf(w.State())); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// listStep prints the entities selectable at the wizard's current step.
func (a *app) listStep(ctx context.Context, state wizard.State) error {
	var (
		value any
		err   error
	)
	switch state.Step {
	case wizard.StepStory:
		value, err = boxed[[]hierarchy.Story](a.gateway.Stories().ListByParent(ctx, state.ProductID))
	case wizard.StepChapter:
		value, err = boxed[[]hierarchy.Chapter](a.gateway.Chapters().ListByParent(ctx, state.StoryID))
	default:
		value, err = boxed[[]hierarchy.Verse](a.gateway.Verses().ListByParent(ctx, state.ChapterID))
	}
	if err != nil {
		return err
	}
	return a.print(value)
}
