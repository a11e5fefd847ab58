// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
HTTP delivery layer for favorites. All routes require a bearer token.
*/

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gudangku/gudangku/internal/platform/middleware"
	requestutil "github.com/gudangku/gudangku/internal/platform/request"
	"github.com/gudangku/gudangku/internal/platform/respond"
	"github.com/gudangku/gudangku/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements favorite-related HTTP endpoints.
type Handler struct {
	favoriteService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{favoriteService: service}
}

// Register mounts the favorite routes onto the parent router.
//
// # Endpoints
//   - POST   /favorites          : Mark an item as favorite.
//   - GET    /favorites          : List favorited items (full rows).
//   - DELETE /favorites/{itemId} : Unmark an item.
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/favorites", handler.add)
		protected.Get("/favorites", handler.list)
		protected.Delete("/favorites/{itemId}", handler.remove)
	})
}

// # Request Payloads

type addFavoriteRequest struct {
	ItemID int64 `json:"itemId"`
}

/*
Add marks an item as a favorite of the principal.

POST /favorites

Request:
  - Body: {itemId}

Response:
  - 201: message: Favorite added
  - 400: ErrValidation: Missing itemId, or item already favorited
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addFavoriteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.ItemID <= 0 {
		respond.Error(writer, request, validate.RequiredError("itemId", "A positive item ID is required"))
		return
	}

	if err := handler.favoriteService.Add(request.Context(), userID, input.ItemID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		"message": "Item added to favorites",
	})
}

/*
List returns the full item rows the principal has favorited.

GET /favorites

Response:
  - 200: []item.Item
  - 404: ErrNotFound: No favorites yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.favoriteService.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
Remove unmarks an item as a favorite of the principal.

DELETE /favorites/{itemId}

Response:
  - 200: message: Favorite removed
  - 404: ErrNotFound: The pair was not favorited
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID, err := requestutil.NumericID(request, "itemId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.favoriteService.Remove(request.Context(), userID, itemID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Item removed from favorites",
	})
}
