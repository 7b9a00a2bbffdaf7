// cmd/partner-tui/main.go
//
// Terminal front end for ai-partner. State lives in a sqlite file under
// the user config dir so votes and the theme survive restarts; logs go to
// a file next to it because the TUI owns the terminal.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/ai-partner/cliparse"
	"github.com/danielhkuo/ai-partner/db"
	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/logging"
	"github.com/danielhkuo/ai-partner/tui"
)

func main() {
	dataDir, err := os.UserConfigDir()
	if err != nil {
		dataDir = "."
	}
	dataDir = filepath.Join(dataDir, "ai-partner")

	fs := flag.NewFlagSet("partner-tui", flag.ExitOnError)
	dbPath := fs.String("db", filepath.Join(dataDir, "partner.db"), "sqlite file")
	logPath := fs.String("log", filepath.Join(dataDir, "partner.log"), "log file")
	mode := fs.String("mode", cliparse.PollModeLedger, "Poll mode (ledger or counter)")
	fs.Parse(os.Args[1:])

	logger, logFile, err := logging.NewFile(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  *dbPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", *dbPath, err)
		os.Exit(1)
	}
	defer conn.Close()

	app, err := tui.NewApp(context.Background(), kvstore.Fallback(kvstore.NewSQL(conn)), *mode, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("tui started", "db", *dbPath, "mode", *mode)

	// Run blocks until the user quits
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
