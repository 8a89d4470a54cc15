package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/flagx"
)

// knownFlags maps every flag the CLI accepts to whether it takes a value.
var knownFlags = map[string]bool{
	"-a": true, "-t": true, "-w": true,
	"-l": true, "-f": true, "-s": true,
	"-r": false,
	"-c": true, "-config": true,
}

// parseFlags populates Config fields from command-line flags and stores the
// remaining positional arguments in cfg.Args.
//
// Supported flags (short forms):
//
//	-a string   joke API root URL
//	-t int      request timeout (in seconds)
//	-w int      pause between setup and delivery of two-part jokes (in seconds)
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (console, text, json)
//	-s string   path to the SQLite joke history
//	-r          skip jokes already recorded in the history
//
// Duration flags only override the current value when they are given, so a
// sub-second value from the config file survives. Panics on parse errors.
func parseFlags(cfg *Config) {
	args, positional := flagx.SplitArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIRoot, "a", cfg.APIRoot, "joke API root URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	delay := fs.Int("w", int(cfg.TwoPartDelay.Seconds()), "two-part joke delay (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: console, text or json")
	fs.StringVar(&cfg.HistoryPath, "s", cfg.HistoryPath, "path to the SQLite joke history")
	fs.BoolVar(&cfg.SkipSeen, "r", cfg.SkipSeen, "skip jokes already in the history")
	// consumed by parseFile
	fs.String("c", "", "path to config file (short)")
	fs.String("config", "", "path to config file (JSON or YAML)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "w":
			cfg.TwoPartDelay = time.Duration(*delay) * time.Second
		}
	})

	cfg.APIRoot = strings.TrimRight(cfg.APIRoot, "/")
	cfg.Args = append(positional, fs.Args()...)
}
