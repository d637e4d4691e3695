// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/pkg/uuid"
)

const flightKey = "languages"

// Service implements language use cases.
//
// A nil cache disables caching. A nil metrics skips instrumentation.
type Service struct {
	repo    Repository
	cache   Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
	flight  singleflight.Group
}

// NewService constructs a new [Service].
func NewService(repo Repository, cache Cache, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		metrics: m,
		logger:  logger,
	}
}

/*
List returns every configured language ordered by sort order.

Description: Served from the cache when possible. Concurrent misses share one
database query. Cache failures are logged and never fail the call.
*/
func (service *Service) List(ctx context.Context) ([]hierarchy.Language, error) {
	if service.cache != nil {
		languages, err := service.cache.Get(ctx)
		if err == nil {
			service.metrics.CacheLookup(metrics.CacheHit)
			return languages, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			service.logger.WarnContext(ctx, "language_cache_read_failed", slog.String("error", err.Error()))
		}
	}
	service.metrics.CacheLookup(metrics.CacheMiss)

	loaded, err, _ := service.flight.Do(flightKey, func() (any, error) {
		languages, err := service.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		if service.cache != nil {
			if err := service.cache.Set(ctx, languages); err != nil {
				service.logger.WarnContext(ctx, "language_cache_write_failed", slog.String("error", err.Error()))
			}
		}
		return languages, nil
	})
	if err != nil {
		return nil, err
	}
	return loaded.([]hierarchy.Language), nil
}

// Active snapshots the active languages for completeness checks.
func (service *Service) Active(ctx context.Context) (multilingual.LanguageSet, error) {
	languages, err := service.List(ctx)
	if err != nil {
		return multilingual.LanguageSet{}, err
	}
	return hierarchy.ActiveSet(languages), nil
}

func (service *Service) Get(ctx context.Context, id string) (hierarchy.Language, error) {
	return service.repo.Get(ctx, id)
}

// Create validates and persists a new language.
func (service *Service) Create(ctx context.Context, payload gateway.LanguagePayload) (hierarchy.Language, error) {
	language := fromPayload(uuid.New(), payload)
	if err := language.Validate(); err != nil {
		return hierarchy.Language{}, err
	}

	if err := service.repo.Create(ctx, &language); err != nil {
		return hierarchy.Language{}, err
	}
	service.invalidate(ctx)

	service.logger.InfoContext(ctx, "language_created", slog.String("code", language.Code), ctxutil.ActorAttr(ctx))
	return language, nil
}

/*
Update replaces a language.

Description: The default flag can only move to another language, never be
dropped, so exactly one default always exists.
*/
func (service *Service) Update(ctx context.Context, id string, payload gateway.LanguagePayload) (hierarchy.Language, error) {
	language := fromPayload(id, payload)
	if err := language.Validate(); err != nil {
		return hierarchy.Language{}, err
	}

	existing, err := service.repo.Get(ctx, id)
	if err != nil {
		return hierarchy.Language{}, err
	}
	if existing.IsDefault && !language.IsDefault {
		return hierarchy.Language{}, apperr.Conflict("Choose another default language first")
	}

	if err := service.repo.Update(ctx, &language); err != nil {
		return hierarchy.Language{}, err
	}
	service.invalidate(ctx)

	service.logger.InfoContext(ctx, "language_updated", slog.String("language_id", id), ctxutil.ActorAttr(ctx))
	return language, nil
}

// Delete removes a language. The default language cannot be deleted.
func (service *Service) Delete(ctx context.Context, id string) error {
	existing, err := service.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return apperr.Conflict("The default language cannot be deleted")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.invalidate(ctx)

	service.logger.WarnContext(ctx, "language_deleted", slog.String("code", existing.Code), ctxutil.ActorAttr(ctx))
	return nil
}

func (service *Service) invalidate(ctx context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(ctx); err != nil {
		service.logger.WarnContext(ctx, "language_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}

func fromPayload(id string, payload gateway.LanguagePayload) hierarchy.Language {
	return hierarchy.Language{
		ID:        id,
		Name:      strings.TrimSpace(payload.Name),
		Code:      strings.ToLower(strings.TrimSpace(payload.Code)),
		Symbol:    strings.TrimSpace(payload.Symbol),
		IsActive:  payload.IsActive,
		IsDefault: payload.IsDefault,
		SortOrder: payload.SortOrder,
	}
}
