// Package archive moves result data between the store and object storage.
//
// Export writes the whole corpus as one JSON snapshot object
// (snapshots/results-<UTC timestamp>-<id>.json) whose body has the same
// {"results": [...]} shape the bulk endpoint accepts, so a snapshot can be
// imported back as-is. Import reads a .json or .csv batch object and applies
// it through the reconciler, optionally forcing the upload mode.
//
// # Routes (admin)
//
//   - POST /api/archive/export
//   - POST /api/archive/import   {"object": "batches/2026.csv", "mode": "replace"}
//   - GET  /api/archive/objects?prefix=snapshots/
package archive
