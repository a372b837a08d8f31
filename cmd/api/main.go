package main

import (
	"net/http"
	"os"
	"time"

	"qa-pet-api/internal/platform/logger"
	"qa-pet-api/internal/router"
)

// @title QA Pet API
// @version 1.0.0
// @description API REST para treinamento e prática de testes de QA.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":3000"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
