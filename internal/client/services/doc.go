// Package services holds the use-case layer between the CLI and the
// transport: fetching vocabulary documents and jokes, and keeping the
// optional history.
package services
