package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/buildinfo"
	"github.com/dmitrijs2005/jokecli/internal/common"
)

// Config holds runtime settings for the joke CLI.
//
// Fields:
//   - APIRoot: base URL of the joke API, without a trailing slash.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - TwoPartDelay: pause between the setup and delivery of a two-part joke.
//   - UserAgent: User-Agent header sent with every request.
//   - LogLevel / LogFormat: see logging.New.
//   - HistoryPath: SQLite file recording displayed jokes; empty disables it.
//   - SkipSeen: re-fetch jokes already present in the history.
//   - Args: positional arguments left after flag parsing.
type Config struct {
	APIRoot        string
	RequestTimeout time.Duration
	TwoPartDelay   time.Duration
	UserAgent      string
	LogLevel       string
	LogFormat      string
	HistoryPath    string
	SkipSeen       bool
	Args           []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIRoot = common.DefaultAPIRoot
	c.RequestTimeout = 10 * time.Second
	c.TwoPartDelay = 3 * time.Second
	c.UserAgent = buildinfo.UserAgent()
	c.LogLevel = "warn"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources take
// precedence over earlier ones.
//
// The parse helpers panic on malformed input; LoadConfig turns that into an
// error wrapping common.ErrUsage.
func LoadConfig() (cfg *Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg = nil
			err = fmt.Errorf("%w: %v", common.ErrUsage, r)
		}
	}()

	cfg = &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg, nil
}
