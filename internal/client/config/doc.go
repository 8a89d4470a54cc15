// Package config loads runtime configuration for the joke CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Arguments that are neither flags nor flag values are kept, in order, in
// Config.Args; the CLI treats exactly three of them as
// (category, flags, keywords).
//
// # File schema
//
//	api_root: https://sv443.net/jokeapi/v2
//	request_timeout: 10s
//	two_part_delay: 3s
//	user_agent: jokecli/dev
//	log_level: warn
//	log_format: console
//	history_path: ./jokes.db
//	skip_seen: false
//
// The same keys are accepted in JSON. This package does not read environment
// variables.
package config
