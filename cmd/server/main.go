package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/startovate/server/internal/api"
	"github.com/startovate/server/internal/config"
	"github.com/startovate/server/internal/repositories"
)

func main() {
	// Wire the flat-file stores
	if err := repositories.Init(config.Envs.DataDir); err != nil {
		log.Fatalf("Could not initialize stores: %v", err)
	}

	port := config.Envs.Port

	mux := api.SetupRouter()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Startovate server on port: %s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", port, err)
	}
}
