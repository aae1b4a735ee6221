// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	requestutil "github.com/gamelens/gamelens/internal/platform/request"
	"github.com/gamelens/gamelens/internal/platform/respond"
	"github.com/gamelens/gamelens/pkg/convert"
	"github.com/gamelens/gamelens/pkg/query"
)

// Handler implements the HTTP layer for preset management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new preset [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the preset endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPresets)
	router.Post("/", handler.createPreset)

	// Collection-level operations before the id wildcard.
	router.Get("/match", handler.matchPreset)
	router.Get("/export", handler.exportPresets)
	router.Post("/import", handler.importPresets)

	router.Get("/{id}", handler.getPreset)
	router.Put("/{id}", handler.updatePreset)
	router.Delete("/{id}", handler.deletePreset)

	return router
}

// RegisterShareRoutes mounts the share-link endpoint beside /presets.
func (handler *Handler) RegisterShareRoutes(router chi.Router) {
	router.Get("/share", handler.shareLink)
}

// upsertRequest is the JSON body for creating or replacing a preset.
type upsertRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Filters     filter.Config `json:"filters"`
}

func (body upsertRequest) draft() Draft {
	return Draft{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Tags:        body.Tags,
		Filters:     body.Filters,
	}
}

// matchResponse wraps the nullable match result so "no match" stays a 200.
type matchResponse struct {
	Preset *Preset `json:"preset"`
}

type shareResponse struct {
	URL string `json:"url"`
}

func (handler *Handler) listPresets(writer http.ResponseWriter, request *http.Request) {
	presets, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, presets)
}

func (handler *Handler) createPreset(writer http.ResponseWriter, request *http.Request) {
	var body upsertRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Save(request.Context(), body.draft())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) getPreset(writer http.ResponseWriter, request *http.Request) {
	preset, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, preset)
}

func (handler *Handler) updatePreset(writer http.ResponseWriter, request *http.Request) {
	var body upsertRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(),
		requestutil.Param(request, "id"), body.draft())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePreset(writer http.ResponseWriter, request *http.Request) {
	deleted, err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !deleted {
		respond.Error(writer, request, apperr.NotFound("Preset"))
		return
	}
	respond.NoContent(writer)
}

// matchPreset handles GET /presets/match: reverse lookup from the filter
// state in the query string to the preset that produces it.
func (handler *Handler) matchPreset(writer http.ResponseWriter, request *http.Request) {
	filters := filter.FromValues(request.URL.Query())

	matched, err := handler.service.FindMatching(request.Context(), filters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, matchResponse{Preset: matched})
}

// exportPresets handles GET /presets/export. An optional comma-separated
// ids parameter restricts the export to those presets.
func (handler *Handler) exportPresets(writer http.ResponseWriter, request *http.Request) {
	ids := query.StringSlice(request.URL.Query().Get("ids"))

	doc, err := handler.service.Export(request.Context(), ids)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

// importPresets handles POST /presets/import. The overwrite query flag
// replaces colliding user presets instead of skipping them.
func (handler *Handler) importPresets(writer http.ResponseWriter, request *http.Request) {
	var doc ExportDocument
	if err := requestutil.DecodeJSON(request, &doc); err != nil {
		respond.Error(writer, request, err)
		return
	}
	overwrite := convert.ToBool(request.URL.Query().Get("overwrite"))

	result, err := handler.service.Import(request.Context(), doc, overwrite)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// shareLink handles GET /share: the canonical front-end URL for the filter
// state in the query string.
func (handler *Handler) shareLink(writer http.ResponseWriter, request *http.Request) {
	filters := filter.FromValues(request.URL.Query())
	respond.OK(writer, shareResponse{URL: handler.service.ShareURL(filters)})
}
