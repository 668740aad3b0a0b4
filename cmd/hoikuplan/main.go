package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/hoikuplan/internal/catalog"
	"github.com/alexanderramin/hoikuplan/internal/cli"
	"github.com/alexanderramin/hoikuplan/internal/db"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/llm"
	"github.com/alexanderramin/hoikuplan/internal/repository"
	"github.com/alexanderramin/hoikuplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Catalog: HOIKUPLAN_CATALOG or the embedded default
	var cat *catalog.Catalog
	var err error
	if path := os.Getenv("HOIKUPLAN_CATALOG"); path != "" {
		cat, err = catalog.Load(path)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// Retention: 0 keeps every snapshot
	keep := 0
	if v := os.Getenv("HOIKUPLAN_KEEP_SNAPSHOTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("HOIKUPLAN_KEEP_SNAPSHOTS: want a non-negative integer, got %q", v)
		}
		keep = n
	}

	var observers []service.UseCaseObserver
	if os.Getenv("HOIKUPLAN_LOG_USECASES") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Snapshot store: SQLite by default, Redis when HOIKUPLAN_STORE=redis
	var forms service.FormService
	switch store := os.Getenv("HOIKUPLAN_STORE"); store {
	case "", "sqlite":
		dbPath := os.Getenv("HOIKUPLAN_DB")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".hoikuplan", "hoikuplan.db")
		}
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		uow := db.NewSQLiteUnitOfWork(database)
		forms = service.NewFormService(repository.NewSQLiteSnapshotRepo(database), uow, keep, observers...)
	case "redis":
		addr := os.Getenv("HOIKUPLAN_REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		client, err := repository.OpenRedis(ctx, repository.RedisConfig{
			Addr:     addr,
			Password: os.Getenv("HOIKUPLAN_REDIS_PASSWORD"),
		})
		if err != nil {
			return err
		}
		defer client.Close()

		forms = service.NewFormService(repository.NewRedisSnapshotRepo(client), nil, keep, observers...)
	default:
		return fmt.Errorf("HOIKUPLAN_STORE: unknown store %q (want sqlite|redis)", store)
	}

	// Suggestion adapter: a disabled client unless HOIKUPLAN_LLM_ENABLED is set
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	suggestions := intelligence.NewSuggestionService(llm.NewClient(llmCfg, observer), observer)

	app := &cli.App{
		Catalog:     cat,
		Forms:       forms,
		Exports:     service.NewExportService(forms, observers...),
		Assist:      service.NewAssistService(forms, suggestions, observers...),
		Suggestions: suggestions,
	}

	// Detect interactive terminal for the fill form and the spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
