package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/petcare-basedata/internal/authz"
	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/internal/transport/middleware"
)

const (
	kindBaseData   = "base_data"
	kindDictionary = "dictionary"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Principal, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Config     *config.Config
	Logger     *slog.Logger
	Tokens     tokenValidator
	Limiter    *middleware.RateLimiter
	BaseData   *BaseDataHandler
	Dictionary *DictionaryHandler
	Health     *HealthHandler
}

// NewRouter builds the HTTP handler: probes and metrics at the root, the
// API under /api.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	var limit middleware.Middleware
	if d.Limiter != nil {
		limit = d.Limiter.Limit(d.Config.Server.RateLimitPerMin)
	}
	r.Use(middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.CORS(d.Config.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
		limit,
	))

	r.Get("/health", d.Health.Health)
	r.Get("/health/live", d.Health.Live)
	r.Get("/health/ready", d.Health.Ready)
	if d.Config.Metrics.Enabled {
		r.Handle(d.Config.Metrics.Path, promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/base-data", func(r chi.Router) {
			bd := d.BaseData
			r.With(require(authz.OpBaseDataList)).Get("/", bd.List)
			r.With(require(authz.OpBaseDataCreate)).Post("/", bd.Create)
			r.With(require(authz.OpBaseDataListByType)).Get("/type/{type}", bd.ListByType)
			r.With(require(authz.OpBaseDataGet)).Get("/{id}", bd.Get)
			r.With(require(authz.OpBaseDataUpdate)).Put("/{id}", bd.Update)
			r.With(require(authz.OpBaseDataDelete)).Delete("/{id}", bd.Delete)
			r.With(require(authz.OpBaseDataDisable)).Post("/{id}/disable", bd.Disable)
			r.With(require(authz.OpBaseDataVersions)).Get("/{id}/versions", bd.Versions)
			r.With(require(authz.OpBaseDataLogs)).Get("/{id}/logs", bd.Logs)
			r.With(require(authz.OpBaseDataRollback)).Post("/{id}/rollback", bd.Rollback)
		})

		r.Route("/base-dict", func(r chi.Router) {
			dh := d.Dictionary
			read := middleware.Require(authz.OpDictRead, kindDictionary)
			write := middleware.Require(authz.OpDictWrite, kindDictionary)

			r.With(read).Get("/types", dh.Types)
			r.With(read).Get("/all-common", dh.AllCommon)
			r.With(read).Get("/value/{dictCode}/{valueCode}", dh.Value)
			r.With(read).Get("/validate/{dictCode}/{valueCode}", dh.Validate)
			r.With(read).Get("/values/{dictCode}", dh.Values)
			r.With(read).Get("/values/{dictCode}/by-parent/{parent}", dh.ValuesByParent)

			r.With(write).Post("/values/{dictCode}", dh.CreateValue)
			r.With(write).Put("/values/{dictCode}/{valueCode}", dh.UpdateValue)
			r.With(write).Post("/values/{dictCode}/{valueCode}/status", dh.SetStatus)
			r.With(middleware.Require(authz.OpDictHistory, kindDictionary)).
				Get("/values/{dictCode}/{valueCode}/history", dh.History)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}

func require(op authz.Operation) func(http.Handler) http.Handler {
	return middleware.Require(op, kindBaseData)
}
