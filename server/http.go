// Package server exposes vibe board generation over HTTP and MCP so the tool
// can back a web frontend or act as an agent tool, mirroring the CLI's
// behavior: one generation call per request, no retries.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/travelvibe/vibeboard/guide"
)

// Generator produces a vibe board for a destination. *guide.Curator satisfies
// it; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, destination string) (*guide.Board, error)
}

// API is the HTTP surface: POST /generate and GET /health.
type API struct {
	version string
	gen     Generator
	logger  *slog.Logger

	mu   sync.RWMutex
	last *guide.Board
}

// NewAPI creates the HTTP API around a generator. A nil logger disables
// request logging.
func NewAPI(gen Generator, version string, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &API{version: version, gen: gen, logger: logger}
}

type generateRequest struct {
	Destination string `json:"destination"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Destination string `json:"destination,omitempty"`
	Content     string `json:"content,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Handler returns the route mux.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", a.handleGenerate)
	mux.HandleFunc("GET /health", a.handleHealth)
	return mux
}

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Warn("rejecting malformed request body", "error", err)
		writeJSON(w, http.StatusBadRequest, generateResponse{
			Success: false,
			Error:   "invalid JSON request body",
		})
		return
	}

	a.logger.Info("generate requested", "destination", req.Destination, "remote", r.RemoteAddr)

	board, err := a.gen.Generate(r.Context(), req.Destination)
	if err != nil {
		if errors.Is(err, guide.ErrEmptyDestination) {
			writeJSON(w, http.StatusBadRequest, generateResponse{
				Success: false,
				Error:   "Please enter a valid destination!",
			})
			return
		}
		a.logger.Error("generation failed", "destination", req.Destination, "error", err)
		writeJSON(w, http.StatusBadGateway, generateResponse{
			Success: false,
			Error:   fmt.Sprintf("Error calling model: %v", err),
		})
		return
	}

	a.mu.Lock()
	a.last = board
	a.mu.Unlock()

	a.logger.Info("generate completed", "destination", board.Destination, "tokens", board.Usage.TotalTokens)
	writeJSON(w, http.StatusOK, generateResponse{
		Success:     true,
		Destination: board.Destination,
		Content:     board.Content,
	})
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "vibeboard",
		"version":   a.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Run serves the API on addr until the context is cancelled or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func (a *API) Run(ctx context.Context, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
