// Package models defines client-side data models used by the joke CLI.
package models

import "time"

// JokeKind is the value of the API's "type" field.
type JokeKind string

const (
	KindSingle  JokeKind = "single"
	KindTwoPart JokeKind = "twopart"
)

// Joke is a decoded API response. Single jokes carry Text, two-part jokes
// carry Setup and Delivery.
type Joke struct {
	// APIID is the identifier assigned by the remote API (0 if absent).
	APIID    int
	Category string
	Lang     string
	Kind     JokeKind

	Text     string
	Setup    string
	Delivery string
}

// Body returns the joke as a single string, used for history records.
func (j *Joke) Body() string {
	if j.Kind == KindTwoPart {
		return j.Setup + "\n" + j.Delivery
	}
	return j.Text
}

// Vocabulary is an ordered list of category or flag names as offered by the
// API. Menu indices are 1-based positions into it.
type Vocabulary []string

// Selectors are the three inputs of a joke request. Empty Flags and Keywords
// mean "no restriction".
type Selectors struct {
	Category string
	Flags    string
	Keywords string
}

// HistoryRecord is a joke that has been shown to the user.
type HistoryRecord struct {
	ID        string
	APIID     int
	Category  string
	Kind      JokeKind
	Text      string
	FetchedAt time.Time
}
