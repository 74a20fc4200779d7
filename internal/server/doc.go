// Package server runs the application's HTTP server.
//
// It covers the server lifecycle: startup, signal handling, and graceful
// shutdown with a bounded drain period.
package server
