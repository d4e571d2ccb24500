package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"innkeeper/internal/config"
	"innkeeper/internal/logger"
	"innkeeper/internal/workers"
)

func main() {
	_ = godotenv.Load()

	log.Println("Starting workers service...")

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Workers need a distinct NATS client id
	cfg.NATS.ClientID = "innkeeper-workers"

	workerService, err := workers.NewWorkerService(cfg)
	if err != nil {
		log.Fatalf("Failed to create worker service: %v", err)
	}

	if err := workerService.Start(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}

	log.Println("Workers service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down workers service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := workerService.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Workers service stopped")
}
