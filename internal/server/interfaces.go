package server

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
