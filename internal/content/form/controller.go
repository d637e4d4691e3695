// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package form drives the create and edit lifecycle of one content entity.

A [Controller] is configured by a [Schema] (which fields are multilingual,
how completeness is judged, where the parent and ordinal live) and talks to
the backend only through [gateway.Gateway]. It is a single-session object:
one controller per open screen, not shared between goroutines.

# Failure policy

  - Validation stops at the first violated rule and never reaches the gateway.
  - A failed save is reported once and the draft stays editable. There is no
    automatic retry.
  - A failed edit-load is fatal for the screen: the user is sent back to the
    listing.
  - A failed sibling listing during create is not: the ordinal falls back to 1.
*/
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/pkg/pointer"
)

// Mode is whether a submit creates or updates.
type Mode int

const (
	Create Mode = iota
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// ErrNotEditable is returned when Submit is called outside the Editing state.
var ErrNotEditable = errors.New("form: draft is not editable in the current state")

// ValidationError is the first rule a draft violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that the entity to edit could not be loaded.
type NotFoundError struct {
	Kind  hierarchy.Kind
	ID    string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q could not be loaded: %s", e.Kind, e.ID, gateway.Message(e.Cause))
}

func (e *NotFoundError) Unwrap() error { return e.Cause }

// Deps are the collaborators shared by every controller on a screen.
type Deps struct {
	Gateway   gateway.Gateway
	Languages multilingual.LanguageSet
	Notifier  Notifier
	Navigator Navigator
	Scheduler Scheduler
	Logger    *slog.Logger

	// ParentHint is the parent the screen was opened under. A failed
	// edit-load lists that parent's children instead of every entity.
	ParentHint string
}

// Controller edits one entity of type T, sending payloads of type P.
type Controller[T hierarchy.Identified, P any] struct {
	schema    Schema[T, P]
	resource  gateway.Mutator[T, P]
	next      NextFunc
	languages multilingual.LanguageSet
	parent    string

	notifier  Notifier
	navigator Navigator
	scheduler Scheduler
	logger    *slog.Logger

	state  State
	mode   Mode
	draft  T
	loaded T
	err    error
}

// New builds a controller in the Loading state.
func New[T hierarchy.Identified, P any](schema Schema[T, P], deps Deps) *Controller[T, P] {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("kind", string(schema.Kind)))

	languages := deps.Languages
	if schema.Bible {
		languages = languages.ForBible()
	}

	controller := &Controller[T, P]{
		schema:    schema,
		resource:  schema.Resource(deps.Gateway),
		languages: languages,
		parent:    deps.ParentHint,
		notifier:  deps.Notifier,
		navigator: deps.Navigator,
		scheduler: deps.Scheduler,
		logger:    logger,
		state:     Loading,
	}

	if schema.Sequencer != nil {
		controller.next = schema.Sequencer(deps.Gateway, logger)
	}
	if controller.scheduler == nil {
		controller.scheduler = TimerScheduler{}
	}

	return controller
}

// # Accessors

func (c *Controller[T, P]) State() State                        { return c.state }
func (c *Controller[T, P]) Mode() Mode                          { return c.mode }
func (c *Controller[T, P]) Draft() T                            { return c.draft }
func (c *Controller[T, P]) Err() error                          { return c.err }
func (c *Controller[T, P]) Languages() multilingual.LanguageSet { return c.languages }

// SetDraft replaces the working draft. Only allowed while Editing.
func (c *Controller[T, P]) SetDraft(draft T) error {
	if c.state != Editing {
		return ErrNotEditable
	}
	c.draft = draft
	return nil
}

// # Load

// Load prepares the draft. An empty id starts a create session with every
// active language present and empty. Otherwise the entity is fetched and
// backfilled the same way; on failure the user is notified and sent to the
// listing, and a [*NotFoundError] is returned.
func (c *Controller[T, P]) Load(ctx context.Context, id string) (T, error) {
	c.state, c.err = Loading, nil

	var entity T
	if id == "" {
		c.mode = Create
	} else {
		c.mode = Update

		fetched, err := c.resource.Get(ctx, id)
		if err != nil {
			c.fire(EventLoadFailed)
			c.err = &NotFoundError{Kind: c.schema.Kind, ID: id, Cause: err}

			c.logger.WarnContext(ctx, "form_load_failed", slog.String("id", id), slog.Any("error", err))
			c.notify(false, gateway.Message(err))
			c.navigate(c.listing())

			var zero T
			return zero, c.err
		}
		entity = fetched
	}

	for _, field := range c.schema.Fields {
		field.Set(&entity, c.languages.Backfill(field.Get(entity)))
	}

	c.draft, c.loaded = entity, entity
	c.fire(EventLoaded)
	return entity, nil
}

// listing is the failed-load destination: the schema's listing under the
// hinted parent.
func (c *Controller[T, P]) listing() Destination {
	var entity T
	destination := c.schema.Listing(entity)
	if c.schema.Parent != nil && destination.ParentID == "" {
		destination.ParentID = c.parent
	}
	return destination
}

// # Validate

// Validate returns the first rule draft violates, or nil. Rules run in order:
// parent reference, required-language completeness per field, then numeric
// and entity-specific constraints. Ordinals are only checked on update since
// create assigns them.
func (c *Controller[T, P]) Validate(draft T) error {
	if violation := c.validate(draft); violation != nil {
		return violation
	}
	return nil
}

func (c *Controller[T, P]) validate(draft T) *ValidationError {
	schema := c.schema

	if schema.Parent != nil && schema.Parent(draft) == "" {
		return &ValidationError{
			Field:   schema.ParentField,
			Message: fmt.Sprintf("Please select a %s", schema.Kind.Parent()),
		}
	}

	codes := c.languages.Codes()
	for _, field := range schema.Fields {
		if !field.Required {
			continue
		}

		text := field.Get(draft)
		if schema.Policy.Satisfied(text, codes) {
			continue
		}

		if schema.Policy == multilingual.RequireAny {
			return &ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("%s is required in at least one language", field.Label),
			}
		}

		for label := range multilingual.MissingLanguageLabels(text, codes, field.Label, c.languages.Name) {
			return &ValidationError{Field: field.Name, Message: label + " is required"}
		}
	}

	if schema.Ordinal != nil && draft.Identity() != "" && schema.Ordinal(draft) < 1 {
		return &ValidationError{
			Field:   schema.OrdinalField,
			Message: fmt.Sprintf("%s must be greater than 0", schema.OrdinalLabel),
		}
	}

	if schema.Check != nil {
		if violation := schema.Check(draft); violation != nil {
			return violation
		}
	}

	return nil
}

// # Submit

// Submit validates and saves the current draft.
//
// Create resolves the ordinal from a fresh sibling listing. Update sends the
// draft's ordinal, or omits it when the schema asks to and it is unchanged.
// Multilingual fields are cleaned against the active languages either way.
func (c *Controller[T, P]) Submit(ctx context.Context) (T, error) {
	var zero T

	if !c.fire(EventSubmit) {
		return zero, ErrNotEditable
	}
	c.err = nil

	draft := c.draft
	if violation := c.validate(draft); violation != nil {
		c.err = violation
		c.fire(EventInvalid)
		return zero, violation
	}

	for _, field := range c.schema.Fields {
		field.Set(&draft, c.languages.Clean(field.Get(draft)))
	}

	var (
		saved T
		err   error
	)

	switch c.mode {
	case Create:
		var ordinal *int
		if c.next != nil {
			next := c.next(ctx, c.schema.Parent(draft))
			c.schema.SetOrdinal(&draft, next)
			ordinal = pointer.To(next)
		}
		saved, err = c.resource.Create(ctx, c.schema.Payload(draft, ordinal))

	case Update:
		saved, err = c.resource.Update(ctx, draft.Identity(), c.schema.Payload(draft, c.updateOrdinal(draft)))
	}

	if err != nil {
		c.err = err
		c.fire(EventFailed)

		c.logger.WarnContext(ctx, "form_submit_failed",
			slog.String("mode", c.mode.String()),
			slog.String("id", draft.Identity()),
			slog.Any("error", err),
		)
		c.notify(false, gateway.Message(err))

		c.fire(EventResume)
		return zero, err
	}

	c.draft = saved
	c.fire(EventSucceeded)

	c.logger.InfoContext(ctx, "form_submit_succeeded",
		slog.String("mode", c.mode.String()),
		slog.String("id", saved.Identity()),
	)
	c.notify(true, c.successMessage())

	if c.schema.AfterSave != nil {
		destination := c.schema.AfterSave(saved)
		c.scheduler.After(SuccessDelay, func() { c.navigate(destination) })
	}

	return saved, nil
}

func (c *Controller[T, P]) updateOrdinal(draft T) *int {
	if c.schema.Ordinal == nil {
		return nil
	}

	current := c.schema.Ordinal(draft)
	if c.schema.OmitUnchangedOrdinal && current == c.schema.Ordinal(c.loaded) {
		return nil
	}
	return pointer.To(current)
}

func (c *Controller[T, P]) successMessage() string {
	verb := "created"
	if c.mode == Update {
		verb = "updated"
	}
	return fmt.Sprintf("%s %s successfully", c.schema.Kind.Title(), verb)
}

// # Helpers

func (c *Controller[T, P]) fire(event Event) bool {
	next, ok := Transition(c.state, event)
	if ok {
		c.state = next
	}
	return ok
}

func (c *Controller[T, P]) notify(success bool, message string) {
	if c.notifier == nil {
		return
	}
	if success {
		c.notifier.Success(message)
		return
	}
	c.notifier.Error(message)
}

func (c *Controller[T, P]) navigate(to Destination) {
	if c.navigator != nil {
		c.navigator.Navigate(to)
	}
}
