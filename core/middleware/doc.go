// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) for the admin routes. An empty
//     key disables the check.
//   - rayid: assigns every request a ray id, stores it in the context for
//     logger.WithRayID and echoes it in the X-Ray-ID response header.
package middleware
