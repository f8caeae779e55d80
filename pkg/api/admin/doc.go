// Package admin provides the operational HTTP server.
//
// It runs on its own port so that no path on the public server is
// reserved. Endpoints:
//   - GET /health   liveness
//   - GET /metrics  Prometheus exposition
package admin
