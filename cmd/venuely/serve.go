package venuely

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	venuehttp "github.com/viant/venuely/adapter/http"
	"github.com/viant/venuely/adapter/http/venue"
)

// ServeCmd starts the reference venue HTTP server backed by memory.
// Usage: venuely serve --addr :8080 --cors-origin http://localhost:5173
type ServeCmd struct {
	Addr        string   `short:"a" long:"addr" description:"listen address" default:":8080"`
	CORSOrigins []string `long:"cors-origin" description:"allowed CORS origin, repeatable (default any)"`
}

func (s *ServeCmd) Execute(_ []string) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: venuehttp.NewServer(venue.NewStore(), s.CORSOrigins, log.Default()),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("venue HTTP server listening on %s", s.Addr)
		err := srv.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		errCh <- err
	}()

	// Wait for termination signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Printf("Received %s, initiating graceful shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	case err := <-errCh:
		return err
	}
}
