// Package results exposes result lookup, statistics and bulk upload over HTTP.
//
// # Routes
//
//   - GET  /api/results/statistics   aggregate pass/fail, CGPA and subject figures
//   - GET  /api/results/all          every stored record (admin)
//   - GET  /api/results/:rollNumber  one record by six digit roll
//   - POST /api/results/bulk         reconcile an upload batch (admin)
//
// Errors are returned as {"error": "..."}: 400 for malformed input, 404 for
// an unknown roll and 503 while the store cannot be reached.
package results
