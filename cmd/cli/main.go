package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/buildinfo"
	"github.com/dmitrijs2005/jokecli/internal/client/cli"
	"github.com/dmitrijs2005/jokecli/internal/client/config"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/dmitrijs2005/jokecli/internal/logging"
)

// interruptGrace bounds how long an interrupted session may take to unwind
// before the process is terminated. A read from stdin cannot be cancelled.
const interruptGrace = time.Second

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, cli.Usage)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, common.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, cli.Usage)
			os.Exit(2)
		}
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		select {
		case <-done:
		case <-time.After(interruptGrace):
			_ = app.Close()
			os.Exit(130)
		}
	}()

	err = app.Run(ctx)
	close(done)
	if err != nil {
		logger.Error(context.Background(), "session failed", "error", err)
		os.Exit(1)
	}
}
