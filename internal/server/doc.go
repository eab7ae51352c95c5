// Package server runs the inspection HTTP server.
//
// It wraps the chi router in an [http.Server] with the configured request
// timeout, listens for termination signals and shuts down gracefully.
package server
