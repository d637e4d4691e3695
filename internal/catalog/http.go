// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/middleware"
	requestutil "github.com/taibuivan/bibble/internal/platform/request"
	"github.com/taibuivan/bibble/internal/platform/respond"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/pkg/pagination"
	"github.com/taibuivan/bibble/pkg/slice"
)

// Handler implements the content hierarchy endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
RegisterRoutes mounts the catalog routes on an authenticated router.

Routes are registered flat, with {id} as the only parameter name, so other
packages can add nested routes such as POST /products/{id}/imports.

Endpoints:
  - GET  /products, /products/{id}, /products/{id}/stories, /products/{id}/hymns
  - GET  /stories/{id}, /stories/{id}/chapters
  - GET  /chapters/{id}, /chapters/{id}/verses
  - GET  /verses/{id}, /hymns/{id}
  - POST, PUT, DELETE on each collection for editors
*/
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/products", handler.listProducts)
	router.Get("/products/{id}", getHandler(handler.service.GetProduct))
	router.Get("/products/{id}/stories", listHandler(handler.service.ListStories))
	router.Get("/products/{id}/hymns", listHandler(handler.service.ListHymns))

	router.Get("/stories/{id}", getHandler(handler.service.GetStory))
	router.Get("/stories/{id}/chapters", listHandler(handler.service.ListChapters))

	router.Get("/chapters/{id}", getHandler(handler.service.GetChapter))
	router.Get("/chapters/{id}/verses", listHandler(handler.service.ListVerses))

	router.Get("/verses/{id}", getHandler(handler.service.GetVerse))
	router.Get("/hymns/{id}", getHandler(handler.service.GetHymn))

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/products", createHandler(handler.service.CreateProduct))
		editorRoute.Put("/products/{id}", updateHandler(handler.service.UpdateProduct))
		editorRoute.Delete("/products/{id}", deleteHandler(handler.service.DeleteProduct))

		editorRoute.Post("/stories", createHandler(handler.service.CreateStory))
		editorRoute.Put("/stories/{id}", updateHandler(handler.service.UpdateStory))
		editorRoute.Delete("/stories/{id}", deleteHandler(handler.service.DeleteStory))

		editorRoute.Post("/chapters", createHandler(handler.service.CreateChapter))
		editorRoute.Put("/chapters/{id}", updateHandler(handler.service.UpdateChapter))
		editorRoute.Delete("/chapters/{id}", deleteHandler(handler.service.DeleteChapter))

		editorRoute.Post("/verses", createHandler(handler.service.CreateVerse))
		editorRoute.Put("/verses/{id}", updateHandler(handler.service.UpdateVerse))
		editorRoute.Delete("/verses/{id}", deleteHandler(handler.service.DeleteVerse))

		editorRoute.Post("/hymns", createHandler(handler.service.CreateHymn))
		editorRoute.Put("/hymns/{id}", updateHandler(handler.service.UpdateHymn))
		editorRoute.Delete("/hymns/{id}", deleteHandler(handler.service.DeleteHymn))
	})
}

/*
listProducts handles GET /api/v1/products?type=book,song&status=active&page=1&limit=20.

Response:
  - 200: []Product with pagination meta
  - 400: unknown type or status
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	filter := ProductFilter{
		Types:  slice.Map(requestutil.List(request, "type"), toProductType),
		Status: hierarchy.ProductStatus(request.URL.Query().Get("status")),
	}

	products, total, err := handler.service.ListProducts(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, page.Meta(total))
}

func toProductType(raw string) hierarchy.ProductType {
	return hierarchy.ProductType(raw)
}

// # Generic endpoint adapters

func getHandler[T any](fn func(context.Context, string) (T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		item, err := fn(request.Context(), requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, item)
	}
}

func listHandler[T any](fn func(context.Context, string) ([]T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		items, err := fn(request.Context(), requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, items)
	}
}

func createHandler[T any, P any](fn func(context.Context, P) (T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input P
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		item, err := fn(request.Context(), input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, item)
	}
}

func updateHandler[T any, P any](fn func(context.Context, string, P) (T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input P
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		item, err := fn(request.Context(), requestutil.ID(request, "id"), input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, item)
	}
}

func deleteHandler(fn func(context.Context, string) error) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := fn(request.Context(), requestutil.ID(request, "id")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Deleted(writer)
	}
}
