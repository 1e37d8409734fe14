package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fhsmendes/cep-clima/config"
	"github.com/fhsmendes/cep-clima/telemetry"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.InitProvider(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize tracing provider: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("failed to shutdown tracing provider: %v", err)
		}
	}()

	server := newServer(cfg)
	log.Printf("Write timeout %s for client timeout %s", server.WriteTimeout, cfg.HTTPClientTimeout)

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("cep-clima running on port %s", cfg.Port)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Error starting server: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
			server.Close()
		}

		log.Println("cep-clima stopped")
	}
}
