package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type SearchConfig struct {
	APIKey     string `toml:"api_key"`
	EngineID   string `toml:"engine_id"`
	NumResults int    `toml:"num_results"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type PromptsConfig struct {
	// Reconstruction overrides the built-in prompt template. It must contain
	// exactly one %s placeholder for the input text.
	Reconstruction string `toml:"reconstruction"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Search  SearchConfig  `toml:"search"`
	Server  ServerConfig  `toml:"server"`
	Prompts PromptsConfig `toml:"prompts"`
}

// Load reads the optional TOML config file, applies environment variable
// overrides and defaults, and validates required credentials. A missing file
// is fine; a missing credential is not.
func Load(path string) (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	// GEMINI_API_KEY is the name deployments already use for the default
	// provider; it applies when LLM_API_KEY is absent.
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && os.Getenv("LLM_API_KEY") == "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_API_KEY"); v != "" {
		c.Search.APIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); v != "" {
		c.Search.EngineID = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.Search.NumResults <= 0 {
		c.Search.NumResults = 5
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
}

// Validate checks the startup secrets. Failing here keeps the process from
// starting with credentials that would only fail at request time.
func (c *Config) Validate() error {
	provider := strings.ToLower(c.LLM.Provider)
	// Ollama serves locally and ignores API keys.
	if provider != "ollama" && c.LLM.APIKey == "" {
		return fmt.Errorf("missing API key for llm provider %q (set GEMINI_API_KEY or LLM_API_KEY)", c.LLM.Provider)
	}
	if c.Search.APIKey == "" {
		return fmt.Errorf("missing search API key (set GOOGLE_SEARCH_API_KEY)")
	}
	if c.Search.EngineID == "" {
		return fmt.Errorf("missing search engine ID (set GOOGLE_SEARCH_ENGINE_ID)")
	}
	if c.Prompts.Reconstruction != "" && strings.Count(c.Prompts.Reconstruction, "%s") != 1 {
		return fmt.Errorf("prompts.reconstruction must contain exactly one %%s placeholder")
	}
	return nil
}
