// Package server runs the StoryNook transports and background workers.
//
// It starts the HTTP API and the optional gRPC health endpoint, waits for a
// termination signal and then drains both servers before the workers are
// stopped.
package server
