package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dashlens/backend/config"
	httpDelivery "github.com/dashlens/backend/internal/delivery/http"
	"github.com/dashlens/backend/internal/infrastructure/cache"
	"github.com/dashlens/backend/internal/infrastructure/fuelapi"
	"github.com/dashlens/backend/internal/infrastructure/llm"
	"github.com/dashlens/backend/internal/infrastructure/memstore"
	"github.com/dashlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting DashLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	fuelClient := fuelapi.NewClient(cfg.Fuel.APIKey, cfg.Fuel.BaseURL, cfg.RateLimit.Fuel)
	completionClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
	messageStore := memstore.NewMessageStore()

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		fuelClient.SetDebug(true)
		completionClient.SetDebug(true)
	}

	if cfg.Fuel.APIKey != "" {
		log.Printf("Fuel API configured: %s", cfg.Fuel.BaseURL)
	} else {
		log.Printf("WARNING: no fuel API key set - serving fallback price $%.2f", cfg.Fuel.FallbackPrice)
	}
	log.Printf("LLM configured: %s (model: %s)", cfg.LLM.BaseURL, cfg.LLM.Model)

	// Initialize usecase layer
	oracle := usecase.NewPriceOracle(memoryCache, fuelClient, usecase.PriceOracleConfig{
		FallbackPrice: cfg.Fuel.FallbackPrice,
		TTL:           cfg.Fuel.CacheTTL,
	})

	dispatcher := usecase.NewToolDispatcher(oracle, usecase.ToolDispatcherConfig{
		MinConfidence: cfg.Dispatch.MinConfidence,
		MPG:           cfg.Dispatch.MPG,
		PerMileCost:   cfg.Dispatch.PerMileCost,
	})

	chatService := usecase.NewChatService(messageStore, dispatcher, completionClient)

	log.Printf("Dispatch: confidence>=%.2f, mpg=%.1f, per-mile=$%.2f",
		cfg.Dispatch.MinConfidence, cfg.Dispatch.MPG, cfg.Dispatch.PerMileCost)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(chatService, oracle)

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
