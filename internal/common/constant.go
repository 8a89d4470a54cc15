package common

const (
	// DefaultAPIRoot is the JokeAPI v2 base URL.
	DefaultAPIRoot = "https://sv443.net/jokeapi/v2"

	// ContentTypeJSON is sent as the Accept header on every API request.
	ContentTypeJSON = "application/json"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// AnyCategory is used when the user does not restrict categories.
	AnyCategory = "Any"
)
