// Package http implements the REST transport of the StoryNook API.
//
// It wires the chi router, decodes JSON and multipart requests, maps service
// errors to status codes and uniform messages, and carries the cross-cutting
// middleware: request tracing, access logging, metrics, security headers,
// CORS, compression, rate limiting and bearer authentication.
package http
