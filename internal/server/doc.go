// Package server runs the development sync server: it listens on the
// configured address and shuts down gracefully on SIGTERM, SIGINT or
// SIGQUIT.
package server
