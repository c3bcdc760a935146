// Package app assembles the report server: it loads configuration,
// initializes logging, wires the services into the HTTP router and
// manages the server lifecycle including graceful shutdown.
package app
