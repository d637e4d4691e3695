// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/validate"
	"github.com/taibuivan/bibble/pkg/pagination"
	"github.com/taibuivan/bibble/pkg/slug"
	"github.com/taibuivan/bibble/pkg/uuid"
)

var (
	productTitle       = textRule{name: "title", label: "Title", required: true}
	productDescription = textRule{name: "description", label: "Description"}
)

func (service *Service) ListProducts(ctx context.Context, filter ProductFilter, page pagination.Params) ([]hierarchy.Product, int, error) {
	v := &validate.Validator{}
	for _, t := range filter.Types {
		v.Custom("type", !t.IsValid(), "Must be one of: book, song")
	}
	v.Custom("status", filter.Status != "" && !filter.Status.IsValid(), "Must be one of: active, inactive, draft")
	if err := v.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.ListProducts(ctx, filter, page.Limit, page.Offset())
}

func (service *Service) GetProduct(ctx context.Context, id string) (hierarchy.Product, error) {
	return service.repo.GetProduct(ctx, id)
}

// CreateProduct validates and stores a new product.
func (service *Service) CreateProduct(ctx context.Context, payload gateway.ProductPayload) (hierarchy.Product, error) {
	product, err := service.buildProduct(ctx, uuid.New(), payload)
	if err != nil {
		return hierarchy.Product{}, err
	}

	if err := service.repo.CreateProduct(ctx, &product); err != nil {
		return hierarchy.Product{}, err
	}

	service.written(ctx, string(hierarchy.KindProduct), actionCreate, product.ID)
	return product, nil
}

// UpdateProduct replaces a product. The slug follows the new title.
func (service *Service) UpdateProduct(ctx context.Context, id string, payload gateway.ProductPayload) (hierarchy.Product, error) {
	product, err := service.buildProduct(ctx, id, payload)
	if err != nil {
		return hierarchy.Product{}, err
	}

	if err := service.repo.UpdateProduct(ctx, &product); err != nil {
		return hierarchy.Product{}, err
	}

	service.written(ctx, string(hierarchy.KindProduct), actionUpdate, product.ID)
	return product, nil
}

func (service *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := service.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	service.written(ctx, string(hierarchy.KindProduct), actionDelete, id)
	return nil
}

func (service *Service) buildProduct(ctx context.Context, id string, payload gateway.ProductPayload) (hierarchy.Product, error) {
	product := hierarchy.Product{
		ID:          id,
		Type:        payload.Type,
		ContentType: payload.ContentType,
		FreePages:   payload.FreePages,
		Status:      payload.Status,
	}
	if err := product.Validate(); err != nil {
		return hierarchy.Product{}, err
	}

	languages, err := service.languages.Active(ctx)
	if err != nil {
		return hierarchy.Product{}, err
	}

	v := &validate.Validator{}
	product.Title = productTitle.clean(v, payload.Title, languages)
	product.Description = productDescription.clean(v, payload.Description, languages)
	if err := v.Err(); err != nil {
		return hierarchy.Product{}, err
	}

	titles := make([]string, 0, languages.Len())
	for _, code := range languages.Codes() {
		titles = append(titles, product.Title[code])
	}
	product.Slug = slug.FromFirst(titles...)

	return product, nil
}
