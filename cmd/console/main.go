package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/textops/recontext/internal/config"
	"github.com/textops/recontext/internal/core"
	"github.com/textops/recontext/internal/llm"
	"github.com/textops/recontext/internal/search"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	fmt.Println("Text Reconstruction Tool")
	fmt.Println(strings.Repeat("=", 50))

	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("\nPlease check your API keys and configuration.")
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	searcher, err := search.NewGoogleClient(ctx, cfg.Search.APIKey, cfg.Search.EngineID)
	if err != nil {
		return err
	}
	pipeline := core.NewPipeline(llmClient, searcher, cfg)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nEnter the text you want to reconstruct:")
	fmt.Println("(Example: 'lol, that was epic fail. brb')")
	fmt.Print("\n> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	input := strings.TrimSpace(line)
	if input == "" {
		fmt.Println("No text provided. Exiting.")
		return nil
	}

	result, err := pipeline.Process(ctx, input)
	if err != nil {
		return err
	}

	report := core.NewReportFormatter().Format(result)
	fmt.Println(report)

	fmt.Print("\nSave report to file? (y/n): ")
	answer, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "y" || answer == "yes" {
		filename := fmt.Sprintf("reconstruction_report_%d.txt", time.Now().Unix())
		if err := os.WriteFile(filename, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("Report saved to: %s\n", filename)
	}
	return nil
}
