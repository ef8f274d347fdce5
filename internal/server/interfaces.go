package server

// Server owns the listener of the dashboard API.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives and then
	// drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests
	// to finish, bounded by a fixed timeout.
	Shutdown()
}
