package models

import "errors"

var (
	ErrUserNotFound        = errors.New("models: user not found")
	ErrReclamationNotFound = errors.New("models: reclamation not found")
	ErrSessionNotFound     = errors.New("models: session not found")

	ErrNotDemandeur   = errors.New("models: user is not a demandeur")
	ErrNotTechnicien  = errors.New("models: user is not a technicien")
	ErrOutsideService = errors.New("models: reclamation outside your service")
	ErrAccessDenied   = errors.New("models: access denied")

	ErrInvalidRole        = errors.New("models: invalid role")
	ErrInvalidService     = errors.New("models: invalid service type")
	ErrInvalidStatut      = errors.New("models: invalid statut")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
)
