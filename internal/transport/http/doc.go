// Package http contains the chi handlers for the dashboard API. Handlers
// stay thin, delegating page assembly and dataset access to the services
// layer and error rendering to the RFC 7807 error handler.
package http
