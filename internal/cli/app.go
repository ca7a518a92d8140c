// Package cli is the interactive presentation layer: a line-based REPL
// over the account and diary stores. It owns all input validation; the
// stores trust what it passes them.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/haeun-dev/maumdiary/internal/account"
	"github.com/haeun-dev/maumdiary/internal/config"
	"github.com/haeun-dev/maumdiary/internal/diary"
	"github.com/haeun-dev/maumdiary/internal/logging"
	"github.com/haeun-dev/maumdiary/internal/storage"
)

type App struct {
	cfg      *config.Config
	log      logging.Logger
	db       *sql.DB
	accounts *account.Store
	diaries  *diary.Store
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the database, restores both stores from their snapshots,
// and wires the diary store into the account store as the cascade target.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	kv := storage.NewSQLiteKV(db)
	installID, err := storage.InstallID(ctx, kv)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("install id: %w", err)
	}
	log = log.With("install_id", installID)

	diaries, err := diary.NewStore(ctx, kv, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("diary store: %w", err)
	}

	accounts, err := account.NewStore(ctx, db, diaries, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("account store: %w", err)
	}

	log.Info(ctx, "stores restored", "database", cfg.DatabasePath)

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		accounts: accounts,
		diaries:  diaries,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to maumdiary, your day in 100 characters. Type 'help' for commands.")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status renders the prompt suffix, e.g. "(ann)" while logged in.
func (a *App) status() string {
	if sess := a.accounts.Current(); sess != nil {
		return fmt.Sprintf("(%s)", sess.Username)
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsLoggedIn()
}

// requireSession returns the current session, telling the user to log in
// when there is none.
func (a *App) requireSession() *account.Session {
	sess := a.accounts.Current()
	if sess == nil {
		fmt.Fprintln(a.out, "Please log in first.")
	}
	return sess
}
