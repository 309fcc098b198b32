package httpadapter

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"crowdfund/internal/core/port"
)

// Streamer accepts upgraded stream connections. *websocket.Hub implements it.
type Streamer interface {
	Serve(conn *websocket.Conn)
}

// Handler is the inbound HTTP adapter. Read endpoints are open; the action
// endpoints sit behind a bearer-token check because they sign with the
// service's key.
type Handler struct {
	svc           port.CampaignUseCase
	stream        Streamer
	secret        []byte
	actionTimeout time.Duration
	clock         func() time.Time
	logger        *slog.Logger
	upgrader      websocket.Upgrader
	router        chi.Router
}

// NewHandler creates a handler with all routes configured. stream may be
// nil, in which case the stream endpoint answers 404. allowedOrigins
// restricts which browser origins may open the stream.
func NewHandler(svc port.CampaignUseCase, stream Streamer, secret string, actionTimeout time.Duration, allowedOrigins []string, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:           svc,
		stream:        stream,
		secret:        []byte(secret),
		actionTimeout: actionTimeout,
		clock:         time.Now,
		logger:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/wallet", h.handleWallet)
		r.Get("/receipts", h.handleReceipts)
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleBoard)
			r.Get("/stream", h.handleStream)
			r.Post("/refresh", h.handleRefresh)
			r.Group(func(r chi.Router) {
				r.Use(h.requireToken)
				r.Post("/", h.handleCreate)
				r.Post("/{id}/donate", h.handleDonate)
				r.Post("/{id}/withdraw", h.handleWithdraw)
				r.Post("/{id}/refund", h.handleRefund)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// originChecker returns nil for an empty list so the upgrader falls back to
// its same-origin check.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		return slices.ContainsFunc(allowed, func(a string) bool {
			return strings.EqualFold(strings.TrimSpace(a), origin)
		})
	}
}
