package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneybridge/backend/internal/config"
	"github.com/moneybridge/backend/internal/models"
	mongostore "github.com/moneybridge/backend/internal/storage/mongo"
)

// Out-of-band user provisioning. The API itself never creates accounts, so
// this tool upserts the sample users with properly hashed passwords.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := mongostore.New(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		slog.Error("init document store", "error", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	for _, seed := range sampleUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("hash password", "email", seed.user.Email, "error", err)
			os.Exit(1)
		}
		seed.user.Password = string(hash)

		if err := store.UpsertUser(ctx, seed.user); err != nil {
			slog.Error("upsert user", "email", seed.user.Email, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded user", "email", seed.user.Email, "admin", seed.user.IsAdmin)
	}
}

type seedUser struct {
	user     models.User
	password string
}

func sampleUsers() []seedUser {
	return []seedUser{
		{
			password: "password123",
			user: models.User{
				Name:    "John Doe",
				Email:   "john@example.com",
				Balance: 9200.00,
				Transactions: []models.Transaction{
					{ID: 1, Type: "deposit", Amount: 5000.00, Date: "2024-01-20", Description: "Bank Transfer from Chase", Status: "completed"},
					{ID: 2, Type: "transfer", Amount: -2500.00, Date: "2024-01-19", Description: "To Sarah Johnson - Germany", Status: "completed"},
				},
			},
		},
		{
			password: "alicepass",
			user: models.User{
				Name:         "Alice Smith",
				Email:        "alice@example.com",
				Balance:      0.00,
				Transactions: []models.Transaction{},
			},
		},
		{
			password: "adminpass",
			user: models.User{
				Name:         "Support Admin",
				Email:        "admin@example.com",
				Balance:      0.00,
				Transactions: []models.Transaction{},
				IsAdmin:      true,
			},
		},
	}
}
