// migrate applies or rolls back the embedded schema migrations.
//
// Usage: migrate [up|down]
package main

import (
	"log"
	"os"

	"jendo/backend/internal/config"
	"jendo/backend/internal/db/migrate"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if direction != "up" && direction != "down" {
		log.Fatalf("usage: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	if err := migrate.Run(cfg.DatabaseURL, direction); err != nil {
		log.Fatalf("migrate %s: %v", direction, err)
	}
	log.Printf("migrate %s: done", direction)
}
