// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/content/ordinal"
	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/validate"
	"github.com/taibuivan/bibble/pkg/uuid"
)

var (
	storyTitle       = textRule{name: "title", label: "Title", required: true}
	storyDescription = textRule{name: "description", label: "Description"}
	chapterTitle     = textRule{name: "title", label: "Title", required: true}
)

// bibleLanguages is the active set minus the languages Bible content skips.
func (service *Service) bibleLanguages(ctx context.Context) (multilingual.LanguageSet, error) {
	languages, err := service.languages.Active(ctx)
	if err != nil {
		return multilingual.LanguageSet{}, err
	}
	return languages.ForBible(), nil
}

// parentMismatch is the message for a child placed under the wrong kind of product.
var parentMismatch = map[hierarchy.ProductType]string{
	hierarchy.ProductBook: "Only book products can hold stories",
	hierarchy.ProductSong: "Only song products can hold hymns",
}

// requireProductType rejects a parent product that is missing or of another type.
func (service *Service) requireProductType(ctx context.Context, productID string, want hierarchy.ProductType) error {
	product, err := service.repo.GetProduct(ctx, productID)
	switch {
	case apperr.HasCode(err, apperr.CodeNotFound):
		return apperr.Unprocessable("Product does not exist").WithCause(err)
	case err != nil:
		return err
	case product.Type != want:
		return apperr.Unprocessable(parentMismatch[want])
	}
	return nil
}

// # Stories

func (service *Service) ListStories(ctx context.Context, productID string) ([]hierarchy.Story, error) {
	return service.repo.ListStories(ctx, productID)
}

func (service *Service) GetStory(ctx context.Context, id string) (hierarchy.Story, error) {
	return service.repo.GetStory(ctx, id)
}

/*
CreateStory stores a new story.

Description: A payload without an order gets the next free one among the
product's stories. Two concurrent creates can receive the same order.
*/
func (service *Service) CreateStory(ctx context.Context, payload gateway.StoryPayload) (hierarchy.Story, error) {
	story := hierarchy.Story{ID: uuid.New(), ProductID: payload.ProductID}

	if payload.Order != nil {
		story.Order = *payload.Order
	} else {
		siblings, err := service.repo.ListStories(ctx, payload.ProductID)
		if err != nil {
			return hierarchy.Story{}, err
		}
		story.Order = ordinal.Next(siblings)
	}

	if err := service.fillStory(ctx, &story, payload); err != nil {
		return hierarchy.Story{}, err
	}

	if err := service.repo.CreateStory(ctx, &story); err != nil {
		return hierarchy.Story{}, err
	}

	service.written(ctx, string(hierarchy.KindStory), actionCreate, story.ID)
	return story, nil
}

// UpdateStory replaces a story. A payload without an order keeps the stored one.
func (service *Service) UpdateStory(ctx context.Context, id string, payload gateway.StoryPayload) (hierarchy.Story, error) {
	existing, err := service.repo.GetStory(ctx, id)
	if err != nil {
		return hierarchy.Story{}, err
	}

	story := hierarchy.Story{ID: id, ProductID: payload.ProductID, Order: existing.Order}
	if payload.Order != nil {
		story.Order = *payload.Order
	}

	if err := service.fillStory(ctx, &story, payload); err != nil {
		return hierarchy.Story{}, err
	}

	if err := service.repo.UpdateStory(ctx, &story); err != nil {
		return hierarchy.Story{}, err
	}

	service.written(ctx, string(hierarchy.KindStory), actionUpdate, story.ID)
	return story, nil
}

func (service *Service) DeleteStory(ctx context.Context, id string) error {
	if err := service.repo.DeleteStory(ctx, id); err != nil {
		return err
	}

	service.written(ctx, string(hierarchy.KindStory), actionDelete, id)
	return nil
}

func (service *Service) fillStory(ctx context.Context, story *hierarchy.Story, payload gateway.StoryPayload) error {
	if err := story.Validate(); err != nil {
		return err
	}
	if err := service.requireProductType(ctx, story.ProductID, hierarchy.ProductBook); err != nil {
		return err
	}

	languages, err := service.bibleLanguages(ctx)
	if err != nil {
		return err
	}

	v := &validate.Validator{}
	story.Title = storyTitle.clean(v, payload.Title, languages)
	story.Description = storyDescription.clean(v, payload.Description, languages)
	return v.Err()
}

// # Chapters

func (service *Service) ListChapters(ctx context.Context, storyID string) ([]hierarchy.Chapter, error) {
	return service.repo.ListChapters(ctx, storyID)
}

func (service *Service) GetChapter(ctx context.Context, id string) (hierarchy.Chapter, error) {
	return service.repo.GetChapter(ctx, id)
}

func (service *Service) CreateChapter(ctx context.Context, payload gateway.ChapterPayload) (hierarchy.Chapter, error) {
	chapter, err := service.buildChapter(ctx, uuid.New(), payload)
	if err != nil {
		return hierarchy.Chapter{}, err
	}

	if err := service.repo.CreateChapter(ctx, &chapter); err != nil {
		return hierarchy.Chapter{}, err
	}

	service.written(ctx, string(hierarchy.KindChapter), actionCreate, chapter.ID)
	return chapter, nil
}

func (service *Service) UpdateChapter(ctx context.Context, id string, payload gateway.ChapterPayload) (hierarchy.Chapter, error) {
	chapter, err := service.buildChapter(ctx, id, payload)
	if err != nil {
		return hierarchy.Chapter{}, err
	}

	if err := service.repo.UpdateChapter(ctx, &chapter); err != nil {
		return hierarchy.Chapter{}, err
	}

	service.written(ctx, string(hierarchy.KindChapter), actionUpdate, chapter.ID)
	return chapter, nil
}

func (service *Service) DeleteChapter(ctx context.Context, id string) error {
	if err := service.repo.DeleteChapter(ctx, id); err != nil {
		return err
	}

	service.written(ctx, string(hierarchy.KindChapter), actionDelete, id)
	return nil
}

func (service *Service) buildChapter(ctx context.Context, id string, payload gateway.ChapterPayload) (hierarchy.Chapter, error) {
	chapter := hierarchy.Chapter{ID: id, StoryID: payload.StoryID, Order: payload.Order}
	if err := chapter.Validate(); err != nil {
		return hierarchy.Chapter{}, err
	}

	languages, err := service.bibleLanguages(ctx)
	if err != nil {
		return hierarchy.Chapter{}, err
	}

	v := &validate.Validator{}
	chapter.Title = chapterTitle.clean(v, payload.Title, languages)
	return chapter, v.Err()
}
