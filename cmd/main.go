package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"sched-bot/domain"
	"sched-bot/moderation"
	"sched-bot/observability"
	"sched-bot/repositories"
	"sched-bot/runtime"
	"sched-bot/runtime/workers"
	"sched-bot/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Collaborators & Core
	console := transport.NewConsole(log)
	calendar := transport.NewLocalCalendar(config.CalendarURL)
	screen, err := moderation.NewDefaultNameScreen()
	if err != nil {
		return fmt.Errorf("name screen failed to build: %w", err)
	}

	stats := observability.NewStatsManager()
	store := repositories.NewActivityRepository(db, log)
	registry := runtime.NewElementRegistry(log, console, stats, nil)
	dispatcher := runtime.NewDispatcher(log, registry, store, console, calendar, screen, stats)

	// 4. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewSweeperWorker(log, registry, stats, config.SweepInterval, config.ElementTTL))
	sup.Add(workers.NewStatsWorker(log, stats, registry, config.StatsInterval))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	// 6. Console harness: feed interactions from stdin until EOF.
	log.Info("Scheduler ready", "ttl", config.ElementTTL, "sweep", config.SweepInterval)
	readInteractions(ctx, log, dispatcher)

	stop()
	<-done
	return nil
}

// readInteractions parses stdin lines into interaction events. This is
// a development harness, not the real platform transport:
//
//	user <id>                switch the acting user
//	cmd <name>               slash command (create-event, events, ...)
//	click <custom_id>        press a button
//	pick <custom_id> <value> select a menu option
//	form <custom_id> k=v ... submit a form
func readInteractions(ctx context.Context, log *slog.Logger, dispatcher *runtime.Dispatcher) {
	userID := "local-user"
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var in domain.Interaction
		switch parts[0] {
		case "user":
			if len(parts) == 2 {
				userID = parts[1]
			}
			continue
		case "cmd":
			if len(parts) != 2 {
				continue
			}
			in = domain.Interaction{Kind: domain.KindCommand, CustomID: parts[1]}
		case "click":
			if len(parts) != 2 {
				continue
			}
			in = domain.Interaction{Kind: domain.KindElementActivated, CustomID: parts[1]}
		case "pick":
			if len(parts) != 3 {
				continue
			}
			in = domain.Interaction{Kind: domain.KindSelectionMade, CustomID: parts[1], Selections: []string{parts[2]}}
		case "form":
			if len(parts) < 2 {
				continue
			}
			fields := make(map[string]string)
			for _, pair := range parts[2:] {
				key, value, found := strings.Cut(pair, "=")
				if found {
					fields[key] = strings.ReplaceAll(value, "_", " ")
				}
			}
			in = domain.Interaction{Kind: domain.KindFormSubmitted, CustomID: parts[1], Fields: fields}
		default:
			continue
		}

		in.UserID = userID
		in.ChannelID = "console"
		if err := dispatcher.Handle(ctx, in); err != nil {
			log.Warn("Interaction failed", "error", err)
		}
	}
}
