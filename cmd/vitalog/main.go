package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/vitalog/internal/advice"
	"github.com/alexanderramin/vitalog/internal/cli"
	"github.com/alexanderramin/vitalog/internal/config"
	"github.com/alexanderramin/vitalog/internal/db"
	"github.com/alexanderramin/vitalog/internal/llm"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
	"github.com/alexanderramin/vitalog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	scorer := scoring.NewScorer()

	// The narrative generator is optional; without it every narrative
	// comes from the deterministic fallback.
	var client llm.Client
	llmCfg := cfg.LLMClientConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	weights := cfg.WHIWeights()
	app := &cli.App{
		Checkins: service.NewCheckinService(store.Records, scorer),
		Status:   service.NewStatusService(store.Records, store.Snapshots, scorer, weights),
		Advice: service.NewAdviceService(store.Records, store.Advice, scorer, weights,
			advice.NewNarrativeService(client)),
		Review: service.NewReviewService(store.Records, store.Snapshots, client),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func openStore(cfg *config.Config) (*repository.Store, error) {
	if cfg.Store == config.StoreSQLite {
		database, err := db.OpenDB(cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteStore(database), nil
	}

	store, err := repository.NewJSONStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	return store, nil
}
