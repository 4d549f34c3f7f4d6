// Package api provides the HTTP API server for score analysis, rule search,
// visual recommendation, and preference feedback.
package api

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8090")
	ListenAddr string
}
