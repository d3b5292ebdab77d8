// Package health reports liveness and store readiness.
//
//   - GET /status      process liveness; always 200
//   - GET /api/health  store readiness and document count; 503 until connected
//   - GET /api         service name and endpoint index
package health
