// Package api assembles the HTTP router and starts the server.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/cooksapp/cooks/internal/api/middleware"
	"github.com/cooksapp/cooks/internal/api/routes/ping"
	"github.com/cooksapp/cooks/internal/api/routes/recipes"
	"github.com/cooksapp/cooks/internal/api/routes/users"
	"github.com/cooksapp/cooks/internal/env"
)

// NewRouter builds the API router. Trailing slashes are stripped so both
// "/api/recipes" and "/api/recipes/" reach the same handler.
func NewRouter(environment *env.Env) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.StripSlashes)
	r.Use(middleware.AddRequestID)
	r.Use(middleware.LogRequest(environment.Logger))
	r.Use(middleware.InjectEnv(environment))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Post("/register/email", users.HandleRegisterEmail)
		r.Post("/email-verify", users.HandleVerifyEmail)
		r.Post("/register/personal-info", users.HandleRegisterPersonalInfo)
		r.Post("/login", users.HandleLogin)

		r.Get("/recipes/search", recipes.HandleSearchRecipes)
		r.Get("/recipes/{recipeID}", recipes.HandleGetRecipe)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/main", recipes.HandleListRecipes)
			r.Post("/recipes", recipes.HandleCreateRecipe)
			r.Get("/recipes/category/{category}", recipes.HandleListByCategory)
			r.Post("/recipes/{recipeID}/like", recipes.HandleLikeRecipe)
			r.Delete("/recipes/{recipeID}/like", recipes.HandleUnlikeRecipe)

			r.Get("/users", users.HandleListUsers)
			r.Post("/users/{userID}/follow", users.HandleFollowUser)
			r.Post("/users/{userID}/unfollow", users.HandleUnfollowUser)
			r.Get("/mypage", users.HandleMyPage)
			r.Patch("/my-page/update", users.HandleUpdateMyPage)
		})
	})

	return r
}

// Start serves the API until the listener fails.
func Start(environment *env.Env) error {
	addr := ":" + strconv.Itoa(environment.Config.App.Port)
	environment.Logger.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: NewRouter(environment),
	}
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("serving api: %w", err)
	}
	return nil
}
