package server

// Server is the lifecycle of the development sync server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown stops accepting connections and waits for requests in
	// flight, bounded by a fixed timeout.
	Shutdown()
}
