package server

// Server is the lifecycle of the inspection server.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer()

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
