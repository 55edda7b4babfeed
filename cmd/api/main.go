package main

import (
	"net/http"
	"os"
	"time"

	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/router"
)

// @title Medication Reminder API
// @version 1.0
// @description Tarjetas de medicación, tomas de hoy, reporte de adherencia y vista semanal.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
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

	log.Info("starting server", logger.Fields{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", logger.Fields{"err": err})
		os.Exit(1)
	}
}
