package main

import (
	"fmt"
	"log"
	"os"

	"github.com/priceguesser/backend/config"
	httpDelivery "github.com/priceguesser/backend/internal/delivery/http"
	"github.com/priceguesser/backend/internal/infrastructure/cache"
	"github.com/priceguesser/backend/internal/infrastructure/ikea"
	"github.com/priceguesser/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceGuesser Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (size=%d, rate=%.1f req/s)",
		cfg.Catalog.BaseURL, cfg.Catalog.ResultSize, cfg.Catalog.RequestsPerSec)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	catalogClient := ikea.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.UserAgent,
		cfg.Catalog.ResultSize,
		cfg.Catalog.RequestsPerSec,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	// Initialize usecase layer
	gameService := usecase.NewGameService(
		memoryCache,
		catalogClient,
		usecase.GameServiceConfig{
			Rounds:   cfg.Game.RoundsPerDay,
			MinPrice: cfg.Game.MinPrice,
			MaxPrice: cfg.Game.MaxPrice,
		},
	)

	log.Printf("Game: rounds=%d, price band [%.0f, %.0f]",
		cfg.Game.RoundsPerDay, cfg.Game.MinPrice, cfg.Game.MaxPrice)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(gameService, catalogClient)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
