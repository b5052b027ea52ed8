package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger

	analysisService service.AnalysisService
}

func New(logger *slog.Logger, analysisService service.AnalysisService) *Server {
	return &Server{
		logger:          logger.With("component", "rest"),
		analysisService: analysisService,
	}
}

// Handler - routes of the HTTP API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /analysis", that.createAnalysis)
	mux.HandleFunc("GET /analysis/{id}", that.getAnalysis)
	mux.HandleFunc("DELETE /analysis/{id}", that.deleteAnalysis)

	return mux
}

// Start - serves the API until ctx is canceled, then shuts the server down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
