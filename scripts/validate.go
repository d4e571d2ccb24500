package main

import (
	"flag"
	"log"
	"os"

	"innkeeper/internal/validation"
)

func main() {
	var baseURL, username, password string
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "Base URL for API validation")
	flag.StringVar(&username, "user", "admin@innkeeper.local", "Basic auth username")
	flag.StringVar(&password, "password", "changeme123", "Basic auth password")
	flag.Parse()

	log.Printf("Starting API validation against: %s", baseURL)

	validator := validation.NewValidator(baseURL, username, password)
	if err := validator.ValidateAll(); err != nil {
		log.Printf("❌ Validation failed: %v", err)
		os.Exit(1)
	}

	log.Println("✅ Validation passed!")
}
