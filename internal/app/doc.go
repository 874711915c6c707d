// Package app wires configuration, services, middleware and routes into
// one Application container with a graceful start/stop lifecycle.
package app
