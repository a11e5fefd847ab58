// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
HTTP delivery layer for user identity management.

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: JSON for login, multipart/form-data for registration (photo upload).
  - Security: Orchestrates JWT issuance on successful login.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/gudangku/gudangku/internal/platform/request"
	"github.com/gudangku/gudangku/internal/platform/respond"
	"github.com/gudangku/gudangku/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (Registration, Login).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Register mounts the authentication routes onto the parent router.
//
// # Endpoints
//   - POST /register : Creates a new account (multipart with photo).
//   - POST /login    : Authenticates and returns a JWT.
func (handler *Handler) Register(router chi.Router) {
	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /register

Description: Validates multipart input (including a mandatory profile photo),
checks for identity conflicts, and persists a new user profile.

Request:
  - Multipart: username, email, password, first_name, last_name, photo (file)

Response:
  - 201: User: Created user profile
  - 400: ErrInvalidJSON: Missing fields or missing photo
  - 409: ErrConflict: Username or Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	photoBytes, photoName, err := requestutil.FormFile(request, FieldPhoto)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := request.FormValue(FieldUsername)
	email := request.FormValue(FieldEmail)
	password := request.FormValue(FieldPassword)
	firstName := request.FormValue(FieldFirstName)
	lastName := request.FormValue(FieldLastName)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, 3).
		Required(FieldEmail, email).
		Email(FieldEmail, email).
		Required(FieldPassword, password).
		MinLen(FieldPassword, password, 6).
		Required(FieldFirstName, firstName).
		Required(FieldLastName, lastName).
		Custom(FieldPhoto, photoBytes == nil, "A profile photo is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:      username,
		Email:         email,
		Password:      password,
		FirstName:     firstName,
		LastName:      lastName,
		PhotoBytes:    photoBytes,
		PhotoFilename: photoName,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and returns a signed identity token.

POST /login

Description: Verifies credentials and mints a one-hour JWT for the principal.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: LoginResult: token, user_id, username, photo_url
  - 400: ErrInvalidJSON: Missing fields
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
