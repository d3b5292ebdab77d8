// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the listen
// port, the admin API key, the request body limit and the graceful shutdown
// window, plus small accessors that apply defaults.
package server
