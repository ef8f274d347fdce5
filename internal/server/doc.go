// Package server runs the dashboard HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
