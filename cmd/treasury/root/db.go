package root

import (
	"context"

	"treasury/internal/config"
	"treasury/internal/engine"
	"treasury/internal/gemini"
	"treasury/internal/log"
	"treasury/internal/storage"
)

type app struct {
	cfg   *config.Config
	store *storage.Store
	svc   *engine.Service
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	templates, err := cfg.Templates()
	if err != nil {
		return nil, nil, err
	}

	logger := log.New(log.ParseLevel(cfg.LogLevel), "treasury")

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	store := storage.NewStore(db)
	svc := engine.NewService(store, engine.Options{
		Templates: templates,
		ParentPIN: cfg.ParentPIN,
		Sentences: gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, logger.WithComponent("gemini")),
		Logger:    logger.WithComponent("engine"),
	})

	return &app{cfg: cfg, store: store, svc: svc}, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a.svc, cleanup, nil
}
