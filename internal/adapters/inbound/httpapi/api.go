package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/truestock/truestock/internal/application"
	"github.com/truestock/truestock/internal/domain"
)

// API serves the inventory over JSON.
type API struct {
	svc *application.InventoryService
	log *zap.Logger
}

func NewAPI(svc *application.InventoryService, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{svc: svc, log: log}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", a.handleSummary)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", a.handleSearch)
			r.Post("/", a.handleAdd)
			r.Get("/{id}", a.handleGet)
			r.Delete("/{id}", a.handleRemove)
			r.Post("/{id}/restock", a.handleRestock)
			r.Post("/{id}/reserve", a.handleReserve)
		})
	})

	return r
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: domain.ErrorKind(err)})
}

func handleDomainError(w http.ResponseWriter, err error) {
	var (
		ve *domain.ValidationError
		ne *domain.NotFoundError
		ie *domain.InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.As(err, &ne):
		respondError(w, http.StatusNotFound, err)
	case errors.As(err, &ie):
		respondError(w, http.StatusConflict, err)
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Kind: domain.KindInternal})
	}
}
