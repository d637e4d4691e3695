// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the content hierarchy over HTTP:

	Product ─┬─ Story ── Chapter ── Verse
	         └─ Hymn

Every write is re-checked against the active language set before it is
stored. Multilingual fields are cleaned so they only ever hold non-empty
values for allowed languages, and required fields must carry at least one
language. The stricter all-languages rules live in the admin form, which
knows which screen the editor is on.
*/
package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/internal/platform/validate"
)

// Languages supplies the active language snapshot for each write.
type Languages interface {
	Active(ctx context.Context) (multilingual.LanguageSet, error)
}

// Service implements catalog use cases. A nil metrics skips instrumentation.
type Service struct {
	repo      Repository
	languages Languages
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, languages Languages, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		languages: languages,
		metrics:   m,
		logger:    logger,
	}
}

// Write actions recorded in metrics and logs.
const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

// textRule cleans one multilingual field against the allowed languages.
type textRule struct {
	name     string
	label    string
	required bool
}

// clean returns the cleaned field and records a violation when a required
// field is left with no language at all.
func (rule textRule) clean(v *validate.Validator, field multilingual.Text, allowed multilingual.LanguageSet) multilingual.Text {
	cleaned := allowed.Clean(field)
	v.Custom(rule.name, rule.required && len(cleaned) == 0, rule.label+" is required in at least one language")
	return cleaned
}

// written logs and counts a successful mutation.
func (service *Service) written(ctx context.Context, entity, action, id string) {
	service.metrics.ContentWrite(entity, action)

	level := slog.LevelInfo
	if action == actionDelete {
		level = slog.LevelWarn
	}
	service.logger.Log(ctx, level, entity+"_"+action+"d", slog.String("id", id), ctxutil.ActorAttr(ctx))
}
