package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tuthub/tuthub/internal/http/handlers/tutor"
)

// newRouter registers every API route.
//
// Route table:
//
//	GET  /api/tutors           → displayed tutor list
//	GET  /api/tutors/{index}   → one displayed tutor
//	POST /api/commands         → run one command
func newRouter(app tutor.Executor) *http.ServeMux {
	router := http.NewServeMux()
	router.HandleFunc("GET /api/tutors", tutor.List(app))
	router.HandleFunc("GET /api/tutors/{index}", tutor.GetByIndex(app))
	router.HandleFunc("POST /api/commands", tutor.Command(app))
	return router
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully: no new connections, in-flight requests get five seconds.
func serve(ctx context.Context, addr string, app tutor.Executor, log *slog.Logger) error {
	server := &http.Server{
		Addr:    addr,
		Handler: newRouter(app),

		// Timeouts guard against slow clients.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", addr))

		// ListenAndServe returns http.ErrServerClosed after Shutdown.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
