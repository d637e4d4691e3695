// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/bibble/internal/content/form"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

/*
Draft is the YAML document `save` reads. Only the keys that apply to the
kind are used; multilingual maps are merged over the stored values so an edit
can touch a single language.

	parent: 0193a9c4-...
	title:
	  en: <p>In the beginning</p>
	  fr: <p>Au commencement</p>
*/
type Draft struct {
	Parent      string            `yaml:"parent"`
	Order       *int              `yaml:"order"`
	Number      *int              `yaml:"number"`
	Title       multilingual.Text `yaml:"title"`
	Description multilingual.Text `yaml:"description"`
	Text        multilingual.Text `yaml:"text"`

	Type        hierarchy.ProductType   `yaml:"type"`
	ContentType hierarchy.ContentType   `yaml:"contentType"`
	FreePages   *int                    `yaml:"freePages"`
	Status      hierarchy.ProductStatus `yaml:"status"`
}

// ParseDraft decodes a draft document. Unknown keys are rejected so a typo
// does not silently drop a field.
func ParseDraft(r io.Reader) (Draft, error) {
	var draft Draft

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&draft); err != nil {
		if errors.Is(err, io.EOF) {
			return Draft{}, errors.New("draft is empty")
		}
		return Draft{}, fmt.Errorf("parse draft: %w", err)
	}
	return draft, nil
}

// merge overlays patch on base without touching base.
func merge(base, patch multilingual.Text) multilingual.Text {
	out := base.Clone()
	maps.Copy(out, patch)
	return out
}

func setInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

// saveDraft runs one form session for kind: load (or start a create when id
// is empty), apply the draft, submit.
func saveDraft(ctx context.Context, kind hierarchy.Kind, deps form.Deps, id string, d Draft) (any, error) {
	switch kind {
	case hierarchy.KindProduct:
		return boxed[hierarchy.Product](submit(ctx, form.ProductSchema(), deps, id, func(p *hierarchy.Product) {
			p.Title, p.Description = merge(p.Title, d.Title), merge(p.Description, d.Description)
			if d.Type != "" {
				p.Type = d.Type
			}
			if d.ContentType != "" {
				p.ContentType = d.ContentType
			}
			if d.Status != "" {
				p.Status = d.Status
			}
			setInt(&p.FreePages, d.FreePages)
		}))

	case hierarchy.KindStory:
		return boxed[hierarchy.Story](submit(ctx, form.StorySchema(), deps, id, func(s *hierarchy.Story) {
			if d.Parent != "" {
				s.ProductID = d.Parent
			}
			s.Title, s.Description = merge(s.Title, d.Title), merge(s.Description, d.Description)
			setInt(&s.Order, d.Order)
		}))

	case hierarchy.KindChapter:
		return boxed[hierarchy.Chapter](submit(ctx, form.ChapterSchema(), deps, id, func(c *hierarchy.Chapter) {
			if d.Parent != "" {
				c.StoryID = d.Parent
			}
			c.Title = merge(c.Title, d.Title)
			setInt(&c.Order, d.Order)
		}))

	case hierarchy.KindVerse:
		return boxed[hierarchy.Verse](submit(ctx, form.VerseSchema(), deps, id, func(v *hierarchy.Verse) {
			if d.Parent != "" {
				v.ChapterID = d.Parent
			}
			v.Text = merge(v.Text, d.Text)
			setInt(&v.Number, d.Number)
		}))

	default:
		return boxed[hierarchy.Hymn](submit(ctx, form.HymnSchema(), deps, id, func(h *hierarchy.Hymn) {
			if d.Parent != "" {
				h.ProductID = d.Parent
			}
			h.Text = merge(h.Text, d.Text)
			setInt(&h.Number, d.Number)
		}))
	}
}

func submit[T hierarchy.Identified, P any](ctx context.Context, schema form.Schema[T, P], deps form.Deps, id string, apply func(*T)) (T, error) {
	controller := form.New(schema, deps)

	draft, err := controller.Load(ctx, id)
	if err != nil {
		return draft, err
	}

	apply(&draft)
	if err := controller.SetDraft(draft); err != nil {
		var zero T
		return zero, err
	}
	return controller.Submit(ctx)
}
