package server

// Server runs the gateway's inbound transports.
//
// RunServer blocks until a stop signal arrives and the transports have
// drained; Shutdown forces the same teardown from code.
type Server interface {
	RunServer()
	Shutdown()
}
