package server

// Server is the lifecycle contract of a transport server managed by this
// package.
//
// RunServer blocks until shutdown is requested; Shutdown releases the
// listener and any in-flight resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
