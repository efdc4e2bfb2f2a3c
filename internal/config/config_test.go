package config

import (
	"os"
	"path/filepath"
	"testing"

	"treasury/internal/engine"
)

// isolate points the loader at an empty config dir and clears the env
// overrides so tests do not pick up the developer's real setup.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("TREASURY_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	for _, key := range []string{"TREASURY_DB_PATH", "TREASURY_PARENT_PIN", "TREASURY_LOG_LEVEL", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ParentPIN != engine.DefaultParentPIN {
		t.Fatalf("pin = %q", cfg.ParentPIN)
	}
	if cfg.LogLevel != "info" || cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.DBPath == "" {
		t.Fatalf("db path not defaulted")
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
parent_pin = "9876"
log_level = "debug"

[[quests]]
kind = "reading"
title = "Quiet Reading"
description = "Read for twenty minutes"
reward = "7.50"

[[quests]]
kind = "english"
title = "Speak Up"
reward = "5"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TREASURY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ParentPIN != "9876" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}

	tpls, err := cfg.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(tpls) != 2 {
		t.Fatalf("templates = %d, want 2", len(tpls))
	}
	if tpls[0].Kind != engine.KindReading || tpls[0].Title != "Quiet Reading" || tpls[0].Reward != 750 {
		t.Fatalf("reading template = %+v", tpls[0])
	}
	if tpls[1].Kind != engine.KindEnglish || tpls[1].Reward != 500 {
		t.Fatalf("english template = %+v", tpls[1])
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`parent_pin = "9876"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TREASURY_CONFIG", path)
	t.Setenv("TREASURY_PARENT_PIN", "4321")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ParentPIN != "4321" {
		t.Fatalf("pin = %q, want env override", cfg.ParentPIN)
	}
	if cfg.GeminiAPIKey != "k" {
		t.Fatalf("api key = %q", cfg.GeminiAPIKey)
	}
}

func TestTemplatesEmptyMeansDefaults(t *testing.T) {
	cfg := &Config{}
	tpls, err := cfg.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(tpls) != len(engine.DefaultTemplates()) {
		t.Fatalf("templates = %d", len(tpls))
	}
}

func TestTemplatesRejectBadQuests(t *testing.T) {
	cases := []QuestConfig{
		{Kind: "math", Title: "x", Reward: "5"},
		{Kind: "reading", Reward: "5"},
		{Kind: "reading", Title: "x", Reward: "abc"},
		{Kind: "reading", Title: "x", Reward: "-5"},
	}
	for i, q := range cases {
		cfg := &Config{Quests: []QuestConfig{q}}
		if _, err := cfg.Templates(); err == nil {
			t.Errorf("case %d: expected error for %+v", i, q)
		}
	}
}
