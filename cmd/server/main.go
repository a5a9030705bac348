package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/textops/recontext/internal/config"
	"github.com/textops/recontext/internal/core"
	"github.com/textops/recontext/internal/llm"
	"github.com/textops/recontext/internal/search"
	"github.com/textops/recontext/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	searcher, err := search.NewGoogleClient(ctx, cfg.Search.APIKey, cfg.Search.EngineID)
	if err != nil {
		log.Fatalf("Failed to initialize search client: %v", err)
	}

	pipeline := core.NewPipeline(llmClient, searcher, cfg)
	srv := server.New(pipeline)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
