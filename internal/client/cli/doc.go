// Package cli provides the interactive joke command-line client.
//
// It wires configuration, the HTTP client, the optional local history and
// the joke service, then runs a small state machine:
//
//   - Menu: with three positional arguments (category, flags, keywords) the
//     request URL is built from them directly; otherwise the category and
//     flag vocabularies are fetched, shown as numbered menus, and the user
//     picks entries by 1-based index and types search keywords.
//   - Display: one joke is fetched and printed. Two-part jokes print the
//     setup, pause, then print the delivery.
//   - Continue: "exit" quits, "menu" goes back to the menu, anything else
//     fetches another joke with the same URL.
//
// Errors are not retried: the first failure ends the session and is returned
// from App.Run.
package cli
