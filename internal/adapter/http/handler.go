package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"near-crowdfund/internal/core/port"
)

// RefreshSource lets the event stream subscribe to the use case's refresh
// signal without depending on its concrete type.
type RefreshSource interface {
	Subscribe() (<-chan struct{}, func())
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign use case, the access gate guarding the create
// route, the refresh signal for the event stream, and a logger. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc     port.CampaignUseCase
	gate    port.AccessGate
	refresh RefreshSource
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The write
// endpoints share one rate limiter: every accepted request turns into a
// signed ledger call that costs real fees.
func NewHandler(svc port.CampaignUseCase, gate port.AccessGate, refresh RefreshSource, limiter *rate.Limiter, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, gate: gate, refresh: refresh, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}/donations", h.handleListDonations)
		r.Get("/events", h.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(writeLimit(limiter))
			r.With(h.requireGate).Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/pledge", h.handlePledge)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// accountHeader carries the signed-in wallet account of the browser session.
const accountHeader = "X-Near-Account"

// requireGate blocks accounts the access gate denies. It guards the create
// route only; pledges and reads are open to any connected wallet.
func (h *Handler) requireGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := r.Header.Get(accountHeader)
		if !h.gate.Allowed(r.Context(), account) {
			h.logger.Warn("create denied", slog.String("account", account))
			http.Error(w, "not authorized to create campaigns", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeLimit applies the shared write-path rate limiter.
func writeLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
