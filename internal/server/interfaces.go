package server

import "context"

// Server is the lifecycle shared by the transports of this package.
type Server interface {
	// RunServer serves until ctx is done and the server has drained.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting work and waits for in-flight requests until
	// ctx expires.
	Shutdown(ctx context.Context) error
}

// Runner is a background job stopped through its context.
type Runner interface {
	Run(ctx context.Context)
}
