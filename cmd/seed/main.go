// seed bootstraps an admin account from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. Idempotent: does nothing if the account exists.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"jendo/backend/internal/config"
	"jendo/backend/internal/db"
	"jendo/backend/internal/security"
	"jendo/backend/internal/user/domain"
	userrepo "jendo/backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := userrepo.NewPostgresRepository(database)
	email := strings.ToLower(strings.TrimSpace(cfg.SeedAdminEmail))

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("lookup admin: %v", err)
	}
	if existing != nil {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(cfg.SeedAdminPassword))
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()
	id, err := users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("created admin %s (id %d)", email, id)
}
