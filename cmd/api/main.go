package main

import (
	"log"

	"jobhunter-backend/internal/bootstrap"
	"jobhunter-backend/internal/shared/config"
	"jobhunter-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	if err := app.Janitor.Start(); err != nil {
		log.Fatalf("janitor error: %v", err)
	}
	defer app.Janitor.Stop()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
