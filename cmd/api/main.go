package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"pet-adoption-service/internal/adapters/auth/warden"
	"pet-adoption-service/internal/platform/logger"
	"pet-adoption-service/internal/ports/auth"
	"pet-adoption-service/internal/router"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	appLog := logger.NewFromEnv()

	// Warden solo si está configurado; sin verifier queda el modo dev
	// (header X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("WARDEN_BASE_URL"); baseURL != "" {
		client, err := warden.NewClient(warden.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("WARDEN_API_KEY"),
		})
		if err != nil {
			log.Fatalf("warden config error: %v", err)
		}
		verifier = warden.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       appLog,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
