package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PoonjothiV/grocerywebsites/checkout"
	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/middleware"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/store"
	"github.com/PoonjothiV/grocerywebsites/utils"
)

// writeJSON responds with the same {success, ...} envelope the backend
// uses, so every consumer sees one response shape.
func writeJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if _, ok := payload["success"]; !ok {
		payload["success"] = true
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps an error to a status code and a success:false envelope.
// Everything here is recoverable; nothing is fatal to the application.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, checkout.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, checkout.ErrMissingAddress),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrNotInCart),
		errors.Is(err, store.ErrUnknownAddress),
		errors.Is(err, models.ErrTerminalStatus):
		status = http.StatusBadRequest
	default:
		var transport *client.TransportError
		var backend *client.BackendError
		if errors.As(err, &transport) {
			status = http.StatusBadGateway
		} else if errors.As(err, &backend) {
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

// requestIdentity pulls the authenticated user and the raw bearer token
// out of the request context.
func requestIdentity(r *http.Request) (*models.User, string, error) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		return nil, "", checkout.ErrUnauthenticated
	}
	user, err := claims.User()
	if err != nil {
		return nil, "", checkout.ErrUnauthenticated
	}
	token, _ := r.Context().Value(middleware.TokenContextKey).(string)
	return user, token, nil
}
