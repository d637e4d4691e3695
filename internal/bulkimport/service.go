// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bulkimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/taibuivan/bibble/internal/catalog"
	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/pkg/slice"
	"github.com/taibuivan/bibble/pkg/uuid"
)

// Service implements CSV validation and commit. A nil metrics skips instrumentation.
type Service struct {
	transactor Transactor
	languages  catalog.Languages
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(transactor Transactor, languages catalog.Languages, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		transactor: transactor,
		languages:  languages,
		metrics:    m,
		logger:     logger,
	}
}

// Summary counts what a commit did.
type Summary struct {
	Stories   int
	Chapters  int
	Created   int
	Updated   int
	Unchanged int
}

// Message is the text returned to the dashboard after a commit.
func (s Summary) Message() string {
	return fmt.Sprintf("Imported %d verses: %d created, %d updated, %d unchanged",
		s.Created+s.Updated+s.Unchanged, s.Created, s.Updated, s.Unchanged)
}

/*
Validate dry-runs a CSV file without touching the database.

Returns:
  - gateway.ImportReport: IsValid with the list of problems found
  - error: unreadable input or a language lookup failure
*/
func (service *Service) Validate(ctx context.Context, file io.Reader) (gateway.ImportReport, error) {
	_, problems, _, err := service.parse(ctx, file)
	if err != nil {
		return gateway.ImportReport{}, err
	}

	return gateway.ImportReport{IsValid: len(problems) == 0, Errors: problems}, nil
}

/*
Commit imports a CSV file into a book product in a single transaction.

Description: Any invalid row rejects the whole file. Missing stories and
chapters are created, which needs their title columns. Existing verses get
the file's non-empty languages merged over their current text.
*/
func (service *Service) Commit(ctx context.Context, productID string, file io.Reader) (Summary, error) {
	rows, problems, allowed, err := service.parse(ctx, file)
	if err != nil {
		return Summary{}, err
	}
	if len(problems) > 0 {
		details := slice.Map(problems, func(problem string) apperr.FieldError {
			return apperr.FieldError{Field: "file", Message: problem}
		})
		return Summary{}, apperr.ValidationError(problems[0], details...)
	}

	var summary Summary
	err = service.transactor.InTx(ctx, func(store Store) error {
		run := &commitRun{store: store, productID: productID, allowed: allowed}
		if err := run.checkProduct(ctx); err != nil {
			return err
		}
		for _, row := range rows {
			if err := run.apply(ctx, row); err != nil {
				return err
			}
		}
		summary = run.summary
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	service.record(summary)
	service.logger.InfoContext(ctx, "csv_import_committed",
		slog.String("product_id", productID),
		slog.Int("created", summary.Created),
		slog.Int("updated", summary.Updated),
		slog.Int("unchanged", summary.Unchanged),
	)
	return summary, nil
}

// parse also returns the Bible language set the file was checked against.
func (service *Service) parse(ctx context.Context, file io.Reader) ([]Row, []string, multilingual.LanguageSet, error) {
	languages, err := service.languages.Active(ctx)
	if err != nil {
		return nil, nil, multilingual.LanguageSet{}, err
	}
	allowed := languages.ForBible()

	rows, problems, err := Parse(file, allowed)
	if err != nil {
		return nil, nil, allowed, apperr.ValidationError("The file is not readable CSV").WithCause(err)
	}
	if problems == nil {
		problems = []string{}
	}
	return rows, problems, allowed, nil
}

func (service *Service) record(summary Summary) {
	for range summary.Created {
		service.metrics.ImportRow(metrics.ImportCreated)
	}
	for range summary.Updated {
		service.metrics.ImportRow(metrics.ImportUpdated)
	}
	for range summary.Unchanged {
		service.metrics.ImportRow(metrics.ImportSkipped)
	}
}

// # Commit

type chapterKey struct {
	storyID string
	order   int
}

// commitRun holds per-transaction lookups so each story and chapter is
// resolved once.
type commitRun struct {
	store     Store
	productID string
	allowed   multilingual.LanguageSet
	stories   map[int]hierarchy.Story
	chapters  map[chapterKey]hierarchy.Chapter
	summary   Summary
}

func (run *commitRun) checkProduct(ctx context.Context) error {
	product, err := run.store.GetProduct(ctx, run.productID)
	if err != nil {
		return err
	}
	if product.Type != hierarchy.ProductBook {
		return apperr.Unprocessable("Only book products can hold stories")
	}

	run.stories = map[int]hierarchy.Story{}
	run.chapters = map[chapterKey]hierarchy.Chapter{}
	return nil
}

func (run *commitRun) apply(ctx context.Context, row Row) error {
	story, err := run.story(ctx, row)
	if err != nil {
		return err
	}

	chapter, err := run.chapter(ctx, story.ID, row)
	if err != nil {
		return err
	}

	verse, err := run.store.FindVerseByNumber(ctx, chapter.ID, row.VerseNumber)
	switch {
	case apperr.HasCode(err, apperr.CodeNotFound):
		verse = hierarchy.Verse{ID: uuid.New(), ChapterID: chapter.ID, Number: row.VerseNumber, Text: row.Text}
		if err := run.store.CreateVerse(ctx, &verse); err != nil {
			return err
		}
		run.summary.Created++
		return nil
	case err != nil:
		return err
	}

	// Stored text may predate a language deactivation; only active codes survive.
	merged := verse.Text.Clone()
	maps.Copy(merged, row.Text)
	merged = run.allowed.Clean(merged)
	if maps.Equal(merged, verse.Text) {
		run.summary.Unchanged++
		return nil
	}

	verse.Text = merged
	if err := run.store.UpdateVerse(ctx, &verse); err != nil {
		return err
	}
	run.summary.Updated++
	return nil
}

func (run *commitRun) story(ctx context.Context, row Row) (hierarchy.Story, error) {
	if story, ok := run.stories[row.StoryOrder]; ok {
		return story, nil
	}

	story, err := run.store.FindStoryByOrder(ctx, run.productID, row.StoryOrder)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		if len(row.StoryTitle) == 0 {
			return hierarchy.Story{}, missingParent(row.Line, "story", row.StoryOrder, FieldStoryTitle)
		}

		story = hierarchy.Story{
			ID:          uuid.New(),
			ProductID:   run.productID,
			Title:       row.StoryTitle,
			Description: multilingual.Text{},
			Order:       row.StoryOrder,
		}
		if err = run.store.CreateStory(ctx, &story); err == nil {
			run.summary.Stories++
		}
	}
	if err != nil {
		return hierarchy.Story{}, err
	}

	run.stories[row.StoryOrder] = story
	return story, nil
}

func (run *commitRun) chapter(ctx context.Context, storyID string, row Row) (hierarchy.Chapter, error) {
	key := chapterKey{storyID: storyID, order: row.ChapterOrder}
	if chapter, ok := run.chapters[key]; ok {
		return chapter, nil
	}

	chapter, err := run.store.FindChapterByOrder(ctx, storyID, row.ChapterOrder)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		if len(row.ChapterTitle) == 0 {
			return hierarchy.Chapter{}, missingParent(row.Line, "chapter", row.ChapterOrder, FieldChapterTitle)
		}

		chapter = hierarchy.Chapter{ID: uuid.New(), StoryID: storyID, Title: row.ChapterTitle, Order: row.ChapterOrder}
		if err = run.store.CreateChapter(ctx, &chapter); err == nil {
			run.summary.Chapters++
		}
	}
	if err != nil {
		return hierarchy.Chapter{}, err
	}

	run.chapters[key] = chapter
	return chapter, nil
}

func missingParent(line int, kind string, order int, column string) error {
	message := fmt.Sprintf("Row %d: %s %d does not exist; fill a %s column to create it", line, kind, order, column)
	return apperr.ValidationError(message, apperr.FieldError{Field: "file", Message: message})
}
