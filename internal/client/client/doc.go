// Package client contains the client-side transport and storage bootstrap
// for the joke CLI.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) with a single Fetch
//     operation: one synchronous GET with an Accept header.
//  2. A net/http implementation (see HTTPClient) that adds a User-Agent, a
//     per-request X-Request-ID and a request timeout. It neither retries nor
//     caches.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     optional joke history, backed by SQLite and embedded goose migrations.
//
// # Error Handling
//
// Network failures wrap common.ErrTransport. Responses with a non-2xx status
// are returned as-is; deciding whether that is an error is the caller's job.
// IsCanceled distinguishes user cancellation from network failure.
package client
