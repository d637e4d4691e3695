// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/platform/middleware"
	requestutil "github.com/taibuivan/bibble/internal/platform/request"
	"github.com/taibuivan/bibble/internal/platform/respond"
	"github.com/taibuivan/bibble/internal/platform/sec"
)

// Handler implements the /languages endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the language routes. Reads need any signed-in user;
// writes need an admin.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
	router.Get("/{id}", handler.getLanguage)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createLanguage)
		adminRoute.Put("/{id}", handler.updateLanguage)
		adminRoute.Delete("/{id}", handler.deleteLanguage)
	})
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	language, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, language)
}

func (handler *Handler) createLanguage(writer http.ResponseWriter, request *http.Request) {
	var input gateway.LanguagePayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	language, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, language)
}

func (handler *Handler) updateLanguage(writer http.ResponseWriter, request *http.Request) {
	var input gateway.LanguagePayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	language, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, language)
}

func (handler *Handler) deleteLanguage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}
