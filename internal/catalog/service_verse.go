// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/validate"
	"github.com/taibuivan/bibble/pkg/uuid"
)

var bodyText = textRule{name: "text", label: "Text", required: true}

// # Verses

func (service *Service) ListVerses(ctx context.Context, chapterID string) ([]hierarchy.Verse, error) {
	return service.repo.ListVerses(ctx, chapterID)
}

func (service *Service) GetVerse(ctx context.Context, id string) (hierarchy.Verse, error) {
	return service.repo.GetVerse(ctx, id)
}

func (service *Service) CreateVerse(ctx context.Context, payload gateway.VersePayload) (hierarchy.Verse, error) {
	verse, err := service.buildVerse(ctx, uuid.New(), payload)
	if err != nil {
		return hierarchy.Verse{}, err
	}

	if err := service.repo.CreateVerse(ctx, &verse); err != nil {
		return hierarchy.Verse{}, err
	}

	service.written(ctx, string(hierarchy.KindVerse), actionCreate, verse.ID)
	return verse, nil
}

func (service *Service) UpdateVerse(ctx context.Context, id string, payload gateway.VersePayload) (hierarchy.Verse, error) {
	verse, err := service.buildVerse(ctx, id, payload)
	if err != nil {
		return hierarchy.Verse{}, err
	}

	if err := service.repo.UpdateVerse(ctx, &verse); err != nil {
		return hierarchy.Verse{}, err
	}

	service.written(ctx, string(hierarchy.KindVerse), actionUpdate, verse.ID)
	return verse, nil
}

func (service *Service) DeleteVerse(ctx context.Context, id string) error {
	if err := service.repo.DeleteVerse(ctx, id); err != nil {
		return err
	}

	service.written(ctx, string(hierarchy.KindVerse), actionDelete, id)
	return nil
}

func (service *Service) buildVerse(ctx context.Context, id string, payload gateway.VersePayload) (hierarchy.Verse, error) {
	verse := hierarchy.Verse{ID: id, ChapterID: payload.ChapterID, Number: payload.Number}
	if err := verse.Validate(); err != nil {
		return hierarchy.Verse{}, err
	}

	languages, err := service.bibleLanguages(ctx)
	if err != nil {
		return hierarchy.Verse{}, err
	}

	v := &validate.Validator{}
	verse.Text = bodyText.clean(v, payload.Text, languages)
	return verse, v.Err()
}

// # Hymns

func (service *Service) ListHymns(ctx context.Context, productID string) ([]hierarchy.Hymn, error) {
	return service.repo.ListHymns(ctx, productID)
}

func (service *Service) GetHymn(ctx context.Context, id string) (hierarchy.Hymn, error) {
	return service.repo.GetHymn(ctx, id)
}

func (service *Service) CreateHymn(ctx context.Context, payload gateway.HymnPayload) (hierarchy.Hymn, error) {
	hymn, err := service.buildHymn(ctx, uuid.New(), payload)
	if err != nil {
		return hierarchy.Hymn{}, err
	}

	if err := service.repo.CreateHymn(ctx, &hymn); err != nil {
		return hierarchy.Hymn{}, err
	}

	service.written(ctx, string(hierarchy.KindHymn), actionCreate, hymn.ID)
	return hymn, nil
}

func (service *Service) UpdateHymn(ctx context.Context, id string, payload gateway.HymnPayload) (hierarchy.Hymn, error) {
	hymn, err := service.buildHymn(ctx, id, payload)
	if err != nil {
		return hierarchy.Hymn{}, err
	}

	if err := service.repo.UpdateHymn(ctx, &hymn); err != nil {
		return hierarchy.Hymn{}, err
	}

	service.written(ctx, string(hierarchy.KindHymn), actionUpdate, hymn.ID)
	return hymn, nil
}

func (service *Service) DeleteHymn(ctx context.Context, id string) error {
	if err := service.repo.DeleteHymn(ctx, id); err != nil {
		return err
	}

	service.written(ctx, string(hierarchy.KindHymn), actionDelete, id)
	return nil
}

// buildHymn checks hymn text against every active language; hymns are not
// Bible content.
func (service *Service) buildHymn(ctx context.Context, id string, payload gateway.HymnPayload) (hierarchy.Hymn, error) {
	hymn := hierarchy.Hymn{ID: id, ProductID: payload.ProductID, Number: payload.Number}
	if err := hymn.Validate(); err != nil {
		return hierarchy.Hymn{}, err
	}
	if err := service.requireProductType(ctx, hymn.ProductID, hierarchy.ProductSong); err != nil {
		return hierarchy.Hymn{}, err
	}

	languages, err := service.languages.Active(ctx)
	if err != nil {
		return hierarchy.Hymn{}, err
	}

	v := &validate.Validator{}
	hymn.Text = bodyText.clean(v, payload.Text, languages)
	return hymn, v.Err()
}
