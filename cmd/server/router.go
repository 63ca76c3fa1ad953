package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tobin/ripple-api/internal/api"
	apimiddleware "github.com/tobin/ripple-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	userHandler := api.NewUserHandler(app.userService)
	socialHandler := api.NewSocialHandler(app.socialService)
	postHandler := api.NewPostHandler(app.postService)
	feedHandler := api.NewFeedHandler(app.feedService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/token", authHandler.TokenLogin)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/remember", authHandler.Remember)
			r.Delete("/auth/remember", authHandler.Forget)

			r.Get("/me", userHandler.Me)
			r.Put("/me/email", userHandler.UpdateEmail)
			r.Put("/me/password", userHandler.UpdatePassword)
			r.Delete("/me", userHandler.Deactivate)

			r.Get("/users/{id}", userHandler.Get)
			r.Post("/users/{id}/follow", socialHandler.Follow)
			r.Delete("/users/{id}/follow", socialHandler.Unfollow)
			r.Get("/users/{id}/follow", socialHandler.FollowStatus)
			r.Get("/users/{id}/following", socialHandler.Following)
			r.Get("/users/{id}/followers", socialHandler.Followers)
			r.Get("/users/{id}/posts", postHandler.ListByAuthor)

			r.Post("/posts", postHandler.Create)
			r.Get("/posts/{id}", postHandler.Get)

			r.Get("/feed", feedHandler.Feed)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
