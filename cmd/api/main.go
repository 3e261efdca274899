package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/fleetops/leakwatch/internal/config"
	"github.com/fleetops/leakwatch/internal/httpserver"
	"github.com/fleetops/leakwatch/internal/ingress"
	"github.com/fleetops/leakwatch/internal/store"
	"github.com/fleetops/leakwatch/internal/tripcache"
)

// main boots the service: config → DB → schema → alert slot → ingress → HTTP server.
func main() {
	// Optional .env for local development; env vars win when both are set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to the remote tables (Postgres) using a connection pool.
	db, err := store.New(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal(err)
	}

	// Re-derive the latest-alert slot from its durable document. A corrupt
	// document means "no alert", never a failed boot.
	slot := ingress.NewSlot(cfg.AlertFile)
	if err := slot.Restore(); err != nil {
		if errors.Is(err, ingress.ErrCorruptState) {
			log.Printf("latest-alert file unreadable, starting empty: %v", err)
		} else {
			log.Fatal(err)
		}
	}

	// The webhook listener runs alongside the dashboard server; the slot is
	// the only state they share.
	go func() {
		log.Printf("alert ingress listening on %s", cfg.IngressAddr)
		log.Fatal(ingress.NewRouter(slot).Run(cfg.IngressAddr))
	}()

	cache := tripcache.New(db.AllTrips)
	router := httpserver.NewRouter(cfg, db, cache, slot)

	log.Printf("dashboard API listening on %s", cfg.HTTPAddr)
	log.Fatal(router.Run(cfg.HTTPAddr))
}
