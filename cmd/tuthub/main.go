// main is the entry point of tuthub.
//
// STARTUP SEQUENCE:
//  1. Parse flags (--config, --serve)
//  2. Load configuration from a YAML file
//  3. Initialise the logger
//  4. Open the storage backend chosen by storage_format and load tutors
//  5. Either read commands from stdin (default) or serve the JSON API
//
// RUNNING:
//
//	go run ./cmd/tuthub --config=config/local.yaml
//	go run ./cmd/tuthub --config=config/local.yaml --serve
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/tuthub
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/tuthub/tuthub/internal/config"
	"github.com/tuthub/tuthub/internal/logic"
	"github.com/tuthub/tuthub/internal/storage"
	"github.com/tuthub/tuthub/internal/storage/sqlite"
	"github.com/tuthub/tuthub/internal/storage/yamlfile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath string
	var serveMode bool

	flagSet := pflag.NewFlagSet("tuthub", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to the configuration YAML file")
	flagSet.BoolVar(&serveMode, "serve", false, "serve the JSON API instead of reading commands from stdin")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	// ── Config ────────────────────────────────────────────────────────────
	// MustLoad fatals on a missing or invalid config.
	cfg := config.MustLoad(configPath)

	// ── Logger ────────────────────────────────────────────────────────────
	// In REPL mode stdout belongs to the user, so logs go to stderr.
	logOut := io.Writer(os.Stderr)
	if serveMode {
		logOut = os.Stdout
	}
	log := setupLogger(cfg.Env, logOut)
	slog.SetDefault(log)

	log.Info("starting tuthub",
		slog.String("env", cfg.Env),
		slog.String("storage_format", cfg.StorageFormat),
		slog.Bool("serve", serveMode),
	)

	// ── Storage ───────────────────────────────────────────────────────────
	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer store.Close()

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	app := logic.Open(store, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveMode {
		return serve(ctx, cfg.HTTPServer.Addr, app, log)
	}
	return runREPL(ctx, app, os.Stdin, os.Stdout)
}

// openStorage builds the backend named by cfg.StorageFormat.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageFormat {
	case config.FormatYAML:
		f, err := yamlfile.New(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.FormatSQLite, "":
		db, err := sqlite.New(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("openStorage: unknown storage format %q", cfg.StorageFormat)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tuthub keeps track of tutor candidates.

By default it reads commands from stdin, one per line, and prints the
result. Type "help" for the command summary and "exit" to quit.

With --serve it exposes the same commands as a JSON API:
  GET  /api/tutors           displayed tutor list
  GET  /api/tutors/{index}   one displayed tutor
  POST /api/commands         {"command": "edit 1 p/91234567"}

Usage:
  tuthub [flags]

Flags:
%s`, flagSet.FlagUsages())
}
