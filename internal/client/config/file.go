package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jokecli/internal/flagx"
	"github.com/dmitrijs2005/jokecli/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema, shared by JSON and YAML.
// Durations use timex.Duration so they can be written as "3s" or as integer
// nanoseconds. Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	APIRoot        string         `json:"api_root" yaml:"api_root"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	TwoPartDelay   timex.Duration `json:"two_part_delay" yaml:"two_part_delay"`
	UserAgent      string         `json:"user_agent" yaml:"user_agent"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	HistoryPath    string         `json:"history_path" yaml:"history_path"`
	SkipSeen       bool           `json:"skip_seen" yaml:"skip_seen"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, choosing the decoder by
// extension and trying YAML then JSON for anything else.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// apply overlays the non-zero fields of fc onto cfg.
func (fc FileConfig) apply(cfg *Config) {
	if fc.APIRoot != "" {
		cfg.APIRoot = strings.TrimRight(fc.APIRoot, "/")
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.TwoPartDelay.Duration > 0 {
		cfg.TwoPartDelay = fc.TwoPartDelay.Duration
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.HistoryPath != "" {
		cfg.HistoryPath = fc.HistoryPath
	}
	if fc.SkipSeen {
		cfg.SkipSeen = true
	}
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Without either flag it does nothing. Panics on read or decode
// errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}
