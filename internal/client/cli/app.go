package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/client/client"
	"github.com/dmitrijs2005/jokecli/internal/client/config"
	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/client/repositories/history"
	"github.com/dmitrijs2005/jokecli/internal/client/services"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/dmitrijs2005/jokecli/internal/filex"
	"github.com/dmitrijs2005/jokecli/internal/logging"
	"golang.org/x/term"
)

// Usage is printed for common.ErrUsage.
const Usage = "usage: jokecli [flags] [<category> <flags> <keywords>]"

type App struct {
	config      *config.Config
	jokeService services.JokeService
	logger      logging.Logger
	db          *sql.DB

	// selectors is set when the three positional arguments were given; the
	// interactive menu is skipped then.
	selectors *models.Selectors

	reader *bufio.Reader
	out    io.Writer

	// test seams
	wait      func(ctx context.Context, d time.Duration) error
	termWidth func() int
}

// NewApp validates the positional arguments and wires the HTTP client, the
// optional history and the joke service. It performs no network I/O, so a
// usage error is always reported before any request is made.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	selectors, err := selectorsFromArgs(c.Args)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.Discard()
	}

	var (
		db   *sql.DB
		repo history.Repository
	)
	if c.HistoryPath != "" {
		db, err = openHistory(ctx, c.HistoryPath)
		if err != nil {
			logger.Error(ctx, "error initializing history database", "path", c.HistoryPath, "error", err)
			return nil, err
		}
		repo = history.NewSQLiteRepository(db)
	}

	apiClient := client.NewHTTPClient(c.RequestTimeout, c.UserAgent, logger)
	js := services.NewJokeService(apiClient, repo, c.SkipSeen, logger)

	return &App{
		config:      c,
		jokeService: js,
		logger:      logger,
		db:          db,
		selectors:   selectors,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		wait:        sleepContext,
		termWidth:   stdoutWidth,
	}, nil
}

// Run drives the session until the user exits. Cancelling ctx (Ctrl-C) ends
// the session without an error.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	err := a.session(ctx)
	if client.IsCanceled(err) {
		a.logger.Info(ctx, "session interrupted")
		return nil
	}
	return err
}

// Close releases the history database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func openHistory(ctx context.Context, path string) (*sql.DB, error) {
	path, err := filex.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return client.InitDatabase(ctx, path)
}

func selectorsFromArgs(args []string) (*models.Selectors, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 3:
		return &models.Selectors{Category: args[0], Flags: args[1], Keywords: args[2]}, nil
	default:
		return nil, fmt.Errorf("%w: expected 0 or 3 positional arguments (category, flags, keywords), got %d", common.ErrUsage, len(args))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stdoutWidth returns the terminal width, or 0 when stdout is not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
