package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"angadBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	demandeurMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleDemandeur))
	technicienMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleTechnicien))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))

	// Demandeur
	mux.Post("/api/demandeur/reclamations", demandeurMiddleware.ThenFunc(app.demandeurHandler.CreateReclamation))
	mux.Get("/api/demandeur/reclamations/:id", demandeurMiddleware.ThenFunc(app.demandeurHandler.Detail))
	mux.Get("/api/demandeur/reclamations", demandeurMiddleware.ThenFunc(app.demandeurHandler.History))

	// Technicien
	mux.Get("/api/technicien/reclamations/replied", technicienMiddleware.ThenFunc(app.technicienHandler.Replied))
	mux.Post("/api/technicien/reclamations/:id/reponse", technicienMiddleware.ThenFunc(app.technicienHandler.Reply))
	mux.Get("/api/technicien/reclamations/:id", technicienMiddleware.ThenFunc(app.technicienHandler.Detail))
	mux.Get("/api/technicien/reclamations", technicienMiddleware.ThenFunc(app.technicienHandler.List))

	// Admin
	mux.Get("/api/admin/reclamations/:id", adminMiddleware.ThenFunc(app.adminHandler.Detail))
	mux.Get("/api/admin/reclamations", adminMiddleware.ThenFunc(app.adminHandler.List))
	mux.Get("/api/admin/stats", adminMiddleware.ThenFunc(app.adminHandler.Stats))
	mux.Post("/api/admin/users", adminMiddleware.ThenFunc(app.userHandler.CreateUser))

	return standardMiddleware.Then(mux)
}
