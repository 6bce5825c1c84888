package router

import (
	"net/http"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/handlers"
	"github.com/AlenaMolokova/cardauth/internal/middleware"
	"github.com/AlenaMolokova/cardauth/internal/usecase"
	"github.com/AlenaMolokova/cardauth/internal/validation"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	CardPrefix       = "/api/card"
	AuthenticatePath = "/authenticate"
	BatchPath        = "/authenticate/batch"
	IssuersPath      = "/issuers"
	TokenPath        = "/api/token"
	StatsPath        = "/api/stats"
	PingPath         = "/ping"
)

type Options struct {
	JWTSecret  string
	APIKeyHash string
	TokenTTL   time.Duration
}

func SetupRoutes(store usecase.StatsStorage, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Log)

	authUC := usecase.NewAuthenticationUseCase(store, validation.NewDigitsValidator())

	r.Get(PingPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post(CardPrefix+AuthenticatePath, handlers.NewAuthenticateHandler(authUC).ServeHTTP)
	r.Post(CardPrefix+BatchPath, handlers.NewBatchAuthenticateHandler(authUC).ServeHTTP)
	r.Get(CardPrefix+IssuersPath, handlers.NewIssuersHandler().ServeHTTP)
	r.Post(TokenPath, handlers.NewTokenHandler(opts.APIKeyHash, opts.JWTSecret, opts.TokenTTL, validation.NewDefaultAPIKeyValidator()).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(opts.JWTSecret))
		r.Get(StatsPath, handlers.NewStatsHandler(authUC).ServeHTTP)
	})

	return r
}
