// Package api provides the HTTP REST API server for newsprism.
//
// It exposes endpoints for company collection runs, industry and
// competitor news, feed health, Prometheus metrics, and WebSocket
// progress streaming.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/prismworks/newsprism/internal/collector"
	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/internal/metrics"
	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// collectTimeout bounds a single collection run, crawling included.
const collectTimeout = 5 * time.Minute

// CollectionService is the collection facade the server fronts.
type CollectionService interface {
	NormalizeIndustry(raw string) string
	IndustryNews(ctx context.Context, industry string, days, maxPer int, refresh bool) []models.Article
	CompetitorNews(ctx context.Context, competitors []string, industry string, days, maxPer int) []models.Article
	CompanyBundle(ctx context.Context, company, industry string, competitors []string, days, maxPer int) *models.CollectionBundle
	Industries() []string
	CheckSources(ctx context.Context) map[string]string
	CrawledCount() int64
	SetProgress(fn collector.ProgressFunc)
}

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	svc     CollectionService
	wsHub   *WSHub
	version string
}

// NewServer creates a configured API server with all routes and
// middleware. Collection milestones are bridged to the WebSocket hub.
func NewServer(cfg *config.Config, svc CollectionService) *Server {
	srv := &Server{
		cfg:     cfg,
		svc:     svc,
		wsHub:   NewWSHub(),
		version: "dev",
	}

	svc.SetProgress(func(stage string, detail map[string]any) {
		srv.wsHub.Broadcast(WSMessage{Type: stage, Data: detail})
	})

	srv.router = srv.buildRouter()
	return srv
}

// SetVersion overrides the version string reported by /health.
func (s *Server) SetVersion(v string) {
	if v != "" {
		s.version = v
	}
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start WebSocket hub
	go s.wsHub.Run()

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	logging.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(collectTimeout + 30*time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health and metrics
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health (also available at /health)
		r.Get("/health", s.handleHealth)

		// Collection
		r.Post("/collect", s.handleCollect)
		r.Post("/collect/industry", s.handleCollectIndustry)
		r.Post("/collect/competitors", s.handleCollectCompetitors)

		// Configuration introspection
		r.Get("/industries", s.handleIndustries)
		r.Get("/config", s.handleGetConfig)

		// Feed health
		r.Get("/sources/health", s.handleSourcesHealth)

		// WebSocket progress stream
		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CollectRequest is the body for POST /api/v1/collect.
type CollectRequest struct {
	Company        string   `json:"company"`
	Industry       string   `json:"industry,omitempty"`
	Competitors    []string `json:"competitors,omitempty"`
	Days           int      `json:"days,omitempty"`
	MaxPerCategory int      `json:"max_per_category,omitempty"`
}

// IndustryRequest is the body for POST /api/v1/collect/industry.
type IndustryRequest struct {
	Industry       string `json:"industry"`
	Days           int    `json:"days,omitempty"`
	MaxPerCategory int    `json:"max_per_category,omitempty"`
	Refresh        bool   `json:"refresh,omitempty"`
}

// CompetitorsRequest is the body for POST /api/v1/collect/competitors.
type CompetitorsRequest struct {
	Competitors   []string `json:"competitors"`
	Industry      string   `json:"industry,omitempty"`
	Days          int      `json:"days,omitempty"`
	MaxPerCompany int      `json:"max_per_company,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"status":     "ok",
			"version":    s.version,
			"time_kst":   utils.FormatISOKST(utils.NowKST()),
			"crawled":    s.svc.CrawledCount(),
			"ws_clients": s.wsHub.ClientCount(),
		},
	})
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	var req CollectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Company == "" {
		writeError(w, http.StatusBadRequest, "company is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), collectTimeout)
	defer cancel()

	bundle := s.svc.CompanyBundle(ctx, req.Company, req.Industry, req.Competitors, req.Days, req.MaxPerCategory)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    bundle,
	})
}

func (s *Server) handleCollectIndustry(w http.ResponseWriter, r *http.Request) {
	var req IndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Industry == "" {
		writeError(w, http.StatusBadRequest, "industry is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), collectTimeout)
	defer cancel()

	ind := s.svc.NormalizeIndustry(req.Industry)
	articles := s.svc.IndustryNews(ctx, ind, req.Days, req.MaxPerCategory, req.Refresh)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"industry": ind,
			"count":    len(articles),
			"articles": articles,
		},
	})
}

func (s *Server) handleCollectCompetitors(w http.ResponseWriter, r *http.Request) {
	var req CompetitorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Competitors) == 0 {
		writeError(w, http.StatusBadRequest, "competitors are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), collectTimeout)
	defer cancel()

	articles := s.svc.CompetitorNews(ctx, req.Competitors, req.Industry, req.Days, req.MaxPerCompany)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"count":    len(articles),
			"articles": articles,
		},
	})
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.svc.Industries(),
	})
}

func (s *Server) handleSourcesHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	statuses := s.svc.CheckSources(ctx)
	healthy := true
	for _, st := range statuses {
		if st != "ok" {
			healthy = false
			break
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, APIResponse{
		Success: true,
		Data: map[string]any{
			"healthy": healthy,
			"sources": statuses,
		},
	})
}

// ============================================================
// Helpers
// ============================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Errorf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}

// ============================================================
// WebSocket Hub
// ============================================================

// WSMessage is a message sent over WebSocket connections.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// WSHub manages WebSocket connections and message broadcasting.
type WSHub struct {
	mu         sync.RWMutex
	clients    map[*WSClient]bool
	broadcast  chan WSMessage
	register   chan *WSClient
	unregister chan *WSClient
}

// WSClient represents a single WebSocket connection.
type WSClient struct {
	hub  *WSHub
	send chan WSMessage
}

// NewWSHub creates a new WebSocket hub.
func NewWSHub() *WSHub {
	return &WSHub{
		clients:    make(map[*WSClient]bool),
		broadcast:  make(chan WSMessage, 256),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
	}
}

// Run starts the hub event loop.
func (h *WSHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.WSClients.Inc()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.WSClients.Dec()
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow client; disconnect
					h.mu.RUnlock()
					h.mu.Lock()
					delete(h.clients, client)
					close(client.send)
					metrics.WSClients.Dec()
					h.mu.Unlock()
					h.mu.RLock()
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends a message to all connected WebSocket clients.
func (h *WSHub) Broadcast(msg WSMessage) {
	select {
	case h.broadcast <- msg:
	default:
		// Drop message if broadcast channel is full
	}
}

// ClientCount returns the number of connected WebSocket clients.
func (h *WSHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a client to the hub.
func (h *WSHub) Register(client *WSClient) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *WSHub) Unregister(client *WSClient) {
	h.unregister <- client
}
