package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"innkeeper/internal/config"
	"innkeeper/internal/database"
	"innkeeper/internal/logger"
	"innkeeper/internal/repository"
	"innkeeper/internal/search"
)

// Rebuilds the booking search index from Postgres. Run after restoring a
// database or losing the Elasticsearch volume.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting booking reindex...")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	searchClient, err := search.NewElasticsearchClient(cfg.Search)
	if err != nil {
		slog.Error("Failed to connect to Elasticsearch", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db)
	ctx := context.Background()

	bookings, err := repos.Bookings.ListAllWithStays(ctx)
	if err != nil {
		slog.Error("Failed to load bookings", "error", err)
		os.Exit(1)
	}

	indexed := 0
	for i := range bookings {
		if err := searchClient.IndexBooking(ctx, &bookings[i]); err != nil {
			slog.Error("Failed to index booking",
				"error", err,
				"booking_id", bookings[i].ID)
			continue
		}
		indexed++
	}

	slog.Info("Reindex complete", "indexed", indexed, "total", len(bookings))
}
