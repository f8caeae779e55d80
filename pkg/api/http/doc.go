// Package http provides the public HTTP API.
//
// The server exposes two routes:
//   - GET /       usage hint
//   - GET /:city  awesomeness prediction for city
//
// Every other path is answered by gin's default 404 handler.
package http
