package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type PromptConfig struct {
	// Classify is a fmt template receiving the review text. The
	// classifier expects the model to answer with one of the three
	// sentiment labels.
	Classify string `toml:"classify"`
}

type Config struct {
	LLM     LLMConfig    `toml:"llm"`
	Neo4j   Neo4jConfig  `toml:"neo4j"`
	Prompts PromptConfig `toml:"prompts"`
}

// DefaultClassifyPrompt is used when config omits [prompts].classify.
const DefaultClassifyPrompt = "Classify the sentiment of the following airline review. " +
	"Answer with exactly one word: Negative, Neutral, or Positive.\n\nReview:\n%s"

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.Prompts.Classify == "" {
		cfg.Prompts.Classify = DefaultClassifyPrompt
	}

	return &cfg, nil
}
