// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
	requestutil "github.com/gamelens/gamelens/internal/platform/request"
	"github.com/gamelens/gamelens/internal/platform/respond"
	"github.com/gamelens/gamelens/pkg/pagination"
)

// HeaderSuggestedSort carries the contextual sort suggestion alongside list
// responses without widening the pagination envelope.
const HeaderSuggestedSort = "X-Suggested-Sort"

// Handler implements the HTTP layer for catalogue discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service

	// now is injectable for deterministic handler tests.
	now func() time.Time
}

// NewHandler constructs a new catalogue [Handler] with its service
// dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// Routes returns a [chi.Router] configured with the catalogue's endpoints.
// Every endpoint is public read-only discovery.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGames)
	router.Get("/{id}", handler.getGame)

	return router
}

// RegisterFacetRoutes mounts the facet endpoints that live beside /games
// rather than under it.
func (handler *Handler) RegisterFacetRoutes(router chi.Router) {
	router.Get("/tags", handler.listTags)
	router.Get("/channels", handler.listChannels)
	router.Get("/snapshot", handler.getSnapshot)
}

// gameResponse decorates a record with its precomputed display strings in
// the currency the request asked for.
type gameResponse struct {
	*game.Record
	Display game.Display `json:"display"`
}

func decorate(records []*game.Record, currency game.Currency) []gameResponse {
	decorated := make([]gameResponse, len(records))
	for i, record := range records {
		decorated[i] = gameResponse{Record: record, Display: game.DisplayFor(record, currency)}
	}
	return decorated
}

// requestCurrency reads the optional currency query parameter, falling back
// to the default display currency.
func requestCurrency(request *http.Request) game.Currency {
	if raw := game.Currency(request.URL.Query().Get("currency")); raw.IsValid() {
		return raw
	}
	return filter.Default().Currency
}

// listGames handles GET /games.
//
// The full filter state arrives in the query string using the shareable-URL
// parameter vocabulary; unknown values fall back per-parameter, so this
// endpoint accepts any URL the share codec ever produced.
//
// Responses:
//   - 200: []Record: Paginated catalogue page
//   - 503: Snapshot not loaded yet
func (handler *Handler) listGames(writer http.ResponseWriter, request *http.Request) {
	cfg := filter.FromValues(request.URL.Query())
	paginationParams := pagination.FromRequest(request)

	result, err := handler.service.List(request.Context(), cfg, paginationParams, handler.now())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.SuggestedSort != "" {
		writer.Header().Set(HeaderSuggestedSort, result.SuggestedSort)
	}
	respond.Paginated(writer, decorate(result.Games, cfg.Currency), result.Meta)
}

// getGame handles GET /games/{id}.
func (handler *Handler) getGame(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, gameResponse{Record: record, Display: game.DisplayFor(record, requestCurrency(request))})
}

// listTags handles GET /tags.
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.Tags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

// listChannels handles GET /channels.
func (handler *Handler) listChannels(writer http.ResponseWriter, request *http.Request) {
	channels, err := handler.service.Channels(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, channels)
}

// getSnapshot handles GET /snapshot: generation metadata for the status
// footer and for operators checking reload health.
func (handler *Handler) getSnapshot(writer http.ResponseWriter, request *http.Request) {
	info, err := handler.service.Snapshot(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}
