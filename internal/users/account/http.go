// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
HTTP delivery layer for user profile management.

Routes span two auth modes: the directory listing and profile edit are open
(the edit endpoint mirrors the mobile contract, which sends no token there —
see the note on [Handler.editProfile]), while single-profile resolution
requires a bearer token.
*/

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gudangku/gudangku/internal/platform/blob"
	"github.com/gudangku/gudangku/internal/platform/middleware"
	requestutil "github.com/gudangku/gudangku/internal/platform/request"
	"github.com/gudangku/gudangku/internal/platform/respond"
	"github.com/gudangku/gudangku/internal/users/auth"
)

// # Definitions & Constructors

// Handler implements profile-related HTTP endpoints.
type Handler struct {
	accountService *Service
	blobStore      blob.Store
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, blobStore blob.Store) *Handler {
	return &Handler{accountService: service, blobStore: blobStore}
}

// Register mounts the account routes onto the parent router.
//
// # Endpoints
//   - GET /users             : Public directory listing.
//   - GET /users/{id}        : Bearer; self or admin only.
//   - PUT /edit-profile/{id} : Open; sparse multipart profile edit.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/users", handler.listUsers)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/users/{id}", handler.getUser)
	})

	// TODO: the mobile client sends no token here; protect once the app
	// attaches its bearer token to profile edits.
	router.Put("/edit-profile/{id}", handler.editProfile)
}

/*
ListUsers returns every registered account.

GET /users

Response:
  - 200: []auth.User: All accounts (password hashes omitted by serialization)
  - 500: ErrInternal: Storage failures
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
GetUser resolves a single profile, restricted to self or admin.

GET /users/{id}

Response:
  - 200: auth.User: The requested profile
  - 403: ErrForbidden: Principal is neither the target nor an admin
  - 404: ErrNotFound: No such user
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	principalID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), principalID, targetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
EditProfile applies a sparse multipart update to a user's profile.

PUT /edit-profile/{id}

Description: Any subset of username, email, password, first_name, last_name,
and photo (file) may be submitted; only the present fields are written. A
submitted photo is persisted to the blob store first and its URL stored.

Response:
  - 200: message: Profile updated
  - 400: ErrValidation: No fields present
  - 404: ErrNotFound: No such user
*/
func (handler *Handler) editProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.NumericID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Parses the multipart body as a side effect; the photo itself is optional.
	photoBytes, photoName, err := requestutil.FormFile(request, auth.FieldPhoto)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateProfileInput{
		Username:  formField(request, auth.FieldUsername),
		Email:     formField(request, auth.FieldEmail),
		Password:  formField(request, auth.FieldPassword),
		FirstName: formField(request, auth.FieldFirstName),
		LastName:  formField(request, auth.FieldLastName),
	}

	if photoBytes != nil {
		photoURL, err := handler.blobStore.Save(request.Context(), photoName, photoBytes)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		input.PhotoURL = &photoURL
	}

	if err := handler.accountService.UpdateProfile(request.Context(), userID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Profile updated successfully",
	})
}

// formField returns a pointer to the form value if the field was submitted,
// or nil when absent. Presence is what matters: an explicitly submitted
// empty string is still a present field.
func formField(request *http.Request, field string) *string {
	if request.MultipartForm == nil {
		return nil
	}
	values, present := request.MultipartForm.Value[field]
	if !present || len(values) == 0 {
		return nil
	}
	return &values[0]
}
