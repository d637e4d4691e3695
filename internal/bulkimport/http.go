// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bulkimport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bibble/internal/platform/constants"
	"github.com/taibuivan/bibble/internal/platform/middleware"
	requestutil "github.com/taibuivan/bibble/internal/platform/request"
	"github.com/taibuivan/bibble/internal/platform/respond"
	"github.com/taibuivan/bibble/internal/platform/sec"
)

// Handler implements the CSV import endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the import routes. Both need an editor.
//
//   - POST /imports/validate      : dry run, answers {isValid, errors}
//   - POST /products/{id}/imports : commit into a book product
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/imports/validate", handler.validate)
		editorRoute.Post("/products/{id}/imports", handler.commit)
	})
}

func (handler *Handler) validate(writer http.ResponseWriter, request *http.Request) {
	file, _, err := requestutil.File(writer, request, constants.ImportFormField, constants.MaxImportFileBytes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	report, err := handler.service.Validate(request.Context(), file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

func (handler *Handler) commit(writer http.ResponseWriter, request *http.Request) {
	file, _, err := requestutil.File(writer, request, constants.ImportFormField, constants.MaxImportFileBytes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	summary, err := handler.service.Commit(request.Context(), requestutil.ID(request, "id"), file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, summary.Message())
}
