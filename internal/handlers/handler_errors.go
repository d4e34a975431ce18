package handlers

import (
	"errors"
	"net/http"

	"angadBack/internal/models"
)

// respondError translates the engine's sentinel errors into HTTP
// status codes. Anything unrecognized is a server error.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrReclamationNotFound),
		errors.Is(err, models.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotDemandeur),
		errors.Is(err, models.ErrNotTechnicien),
		errors.Is(err, models.ErrOutsideService),
		errors.Is(err, models.ErrAccessDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, models.ErrInvalidRole),
		errors.Is(err, models.ErrInvalidService),
		errors.Is(err, models.ErrInvalidStatut):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, models.ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
