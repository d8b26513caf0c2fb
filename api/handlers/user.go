package handlers

import (
	"net/http"

	"github.com/linesmerrill/vehicle-registry-api/config"
	"github.com/linesmerrill/vehicle-registry-api/models"
	"github.com/linesmerrill/vehicle-registry-api/registry"
)

// User exported for testing purposes
type User struct {
	Registry *registry.AccountRegistry
}

// UserCreateHandler registers a user. The response never carries the password hash.
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	var details models.UserDetails
	if err := decodeBody(r, &details); err != nil {
		config.ErrorStatus("failed to decode request", "bad_request", http.StatusBadRequest, w, err)
		return
	}

	user, err := u.Registry.Register(r.Context(), details)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.UserCreatedResponse{
		Message: "user registered successfully",
		NewUser: *user,
	})
}

// UserLoginHandler checks an email and password. No session or token is issued.
func (u User) UserLoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeBody(r, &creds); err != nil {
		config.ErrorStatus("failed to decode request", "bad_request", http.StatusBadRequest, w, err)
		return
	}

	if err := u.Registry.Login(r.Context(), creds); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "login successful"})
}
