// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
HTTP delivery layer for inventory items.

Every route here requires a bearer token; the principal is always read from
the verified claims, never from the request body.
*/

package item

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gudangku/gudangku/internal/platform/middleware"
	requestutil "github.com/gudangku/gudangku/internal/platform/request"
	"github.com/gudangku/gudangku/internal/platform/respond"
	"github.com/gudangku/gudangku/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements item-related HTTP endpoints.
type Handler struct {
	itemService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{itemService: service}
}

// Register mounts the item routes onto the parent router.
//
// # Endpoints
//   - GET    /items          : List the principal's items.
//   - GET    /items/status   : Zero-filled status aggregate.
//   - GET    /items/search   : Case-insensitive name search.
//   - GET    /items/{id}     : Single owned item.
//   - POST   /add-item       : Create with mandatory image upload.
//   - PUT    /items/{id}     : Full-row edit, image optional.
//   - DELETE /items/{id}     : Remove an owned item.
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/items", handler.list)
		protected.Get("/items/status", handler.statusSummary)
		protected.Get("/items/search", handler.search)
		protected.Get("/items/{id}", handler.get)
		protected.Post("/add-item", handler.create)
		protected.Put("/items/{id}", handler.update)
		protected.Delete("/items/{id}", handler.remove)
	})
}

/*
List returns every item owned by the principal.

GET /items

Response:
  - 200: []Item
  - 404: ErrNotFound: The principal has no items
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.itemService.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
StatusSummary returns the principal's aggregate item counts.

GET /items/status

Response:
  - 200: StatusSummary: totalItems, availableItems, unavailableItems
         (zero-filled for an empty inventory, never 404)
*/
func (handler *Handler) statusSummary(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.itemService.StatusSummary(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

/*
Search matches the principal's item names.

GET /items/search?query=

Response:
  - 200: []Item: Matching items
  - 400: ErrValidation: Missing query parameter
  - 404: ErrNotFound: Nothing matched
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.itemService.Search(request.Context(), userID, request.URL.Query().Get(FieldQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
Get returns a single owned item.

GET /items/{id}

Response:
  - 200: Item
  - 404: ErrNotFound: Missing or owned by another user
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.itemService.Get(request.Context(), userID, itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
Create adds a new item to the principal's inventory.

POST /add-item

Request:
  - Multipart: name, stock, location, condition, reminder_date, description,
    image_path (file)

Response:
  - 201: {itemId}: The generated row ID
  - 400: ErrValidation: Missing field or image
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	imageBytes, imageName, err := requestutil.FormFile(request, FieldImage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fields, validationErr := validateItemForm(request, imageBytes == nil)
	if validationErr != nil {
		respond.Error(writer, request, validationErr)
		return
	}

	item, err := handler.itemService.Create(request.Context(), userID, CreateItemInput{
		Name:          fields.name,
		Stock:         fields.stock,
		Location:      fields.location,
		Condition:     fields.condition,
		ReminderDate:  fields.reminderDate,
		Description:   fields.description,
		ImageBytes:    imageBytes,
		ImageFilename: imageName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]int64{
		FieldItemID: item.ID,
	})
}

/*
Update overwrites an owned item with the submitted state.

PUT /items/{id}

Request:
  - Multipart: name, stock, location, condition, reminder_date, description,
    status (optional), image_path (file, optional — absent keeps the stored URL)

Response:
  - 200: Item: The updated entity
  - 400: ErrValidation: Missing field
  - 404: ErrNotFound: Missing or owned by another user
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	imageBytes, imageName, err := requestutil.FormFile(request, FieldImage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The image is the one field that is optional on edit.
	fields, validationErr := validateItemForm(request, false)
	if validationErr != nil {
		respond.Error(writer, request, validationErr)
		return
	}

	item, err := handler.itemService.Update(request.Context(), userID, itemID, UpdateItemInput{
		Name:          fields.name,
		Stock:         fields.stock,
		Location:      fields.location,
		Condition:     fields.condition,
		ReminderDate:  fields.reminderDate,
		Description:   fields.description,
		Status:        request.FormValue(FieldStatus),
		ImageBytes:    imageBytes,
		ImageFilename: imageName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
Remove deletes an owned item.

DELETE /items/{id}

Response:
  - 200: message: Item deleted
  - 404: ErrNotFound: Missing or owned by another user
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.itemService.Delete(request.Context(), userID, itemID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Item deleted successfully",
	})
}

// # Form Handling

type itemFormFields struct {
	name         string
	stock        int
	location     string
	condition    string
	reminderDate string
	description  string
}

// validateItemForm runs the shared create/edit validation over the multipart
// fields. RequiredInt accepts an explicit "0" for stock; absence and zero
// are different things for a count.
func validateItemForm(request *http.Request, imageMissing bool) (itemFormFields, error) {
	fields := itemFormFields{
		name:         request.FormValue(FieldName),
		location:     request.FormValue(FieldLocation),
		condition:    request.FormValue(FieldCondition),
		reminderDate: request.FormValue(FieldReminderDate),
		description:  request.FormValue(FieldDescription),
	}
	rawStock := request.FormValue(FieldStock)

	validator := &validate.Validator{}
	validator.Required(FieldName, fields.name).
		RequiredInt(FieldStock, rawStock).
		Required(FieldLocation, fields.location).
		Required(FieldCondition, fields.condition).
		Required(FieldReminderDate, fields.reminderDate).
		Required(FieldDescription, fields.description).
		Custom(FieldImage, imageMissing, "An item image is required")

	if err := validator.Err(); err != nil {
		return fields, err
	}

	// Safe after RequiredInt passed.
	fields.stock, _ = strconv.Atoi(rawStock)

	return fields, nil
}
