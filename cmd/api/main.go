package main

import (
	"context"
	"log"
	"net"

	"resume-evaluator/internal/server"
	"resume-evaluator/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer app.Close()

	addr := net.JoinHostPort("", cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
