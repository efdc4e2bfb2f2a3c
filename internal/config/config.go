package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"treasury/internal/engine"
	"treasury/internal/storage"
)

// QuestConfig is one daily quest template as written in the config file.
type QuestConfig struct {
	Kind        string `toml:"kind"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Reward      string `toml:"reward"`
}

type Config struct {
	DBPath    string `toml:"db_path"`
	ParentPIN string `toml:"parent_pin"`
	LogLevel  string `toml:"log_level"`

	GeminiAPIKey string `toml:"gemini_api_key"`
	GeminiModel  string `toml:"gemini_model"`

	Quests []QuestConfig `toml:"quests"`
}

// Load builds the configuration: defaults, then the optional TOML file,
// then environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		DBPath:      dbPath,
		ParentPIN:   engine.DefaultParentPIN,
		LogLevel:    "info",
		GeminiModel: "gemini-2.5-flash",
	}

	path := configFilePath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.DBPath = getEnv("TREASURY_DB_PATH", cfg.DBPath)
	cfg.ParentPIN = getEnv("TREASURY_PARENT_PIN", cfg.ParentPIN)
	cfg.LogLevel = getEnv("TREASURY_LOG_LEVEL", cfg.LogLevel)
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)

	return cfg, nil
}

// Templates converts the configured quest list to engine templates. An
// empty list means the built-in defaults.
func (c *Config) Templates() ([]engine.TaskTemplate, error) {
	if len(c.Quests) == 0 {
		return engine.DefaultTemplates(), nil
	}
	out := make([]engine.TaskTemplate, 0, len(c.Quests))
	for i, q := range c.Quests {
		kind, err := engine.ParseKind(q.Kind)
		if err != nil {
			return nil, fmt.Errorf("quest %d: %w", i, err)
		}
		if q.Title == "" {
			return nil, fmt.Errorf("quest %d: title is required", i)
		}
		reward, err := engine.ParseCents(q.Reward)
		if err != nil {
			return nil, fmt.Errorf("quest %d: %w", i, err)
		}
		if reward < 0 {
			return nil, fmt.Errorf("quest %d: reward must not be negative", i)
		}
		out = append(out, engine.TaskTemplate{
			Kind:        kind,
			Title:       q.Title,
			Description: q.Description,
			Reward:      reward,
		})
	}
	return out, nil
}

func configFilePath() string {
	if p := os.Getenv("TREASURY_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "treasury", "config.toml")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
