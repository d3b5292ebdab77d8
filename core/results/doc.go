// Package results defines the result record model shared by the reconciler,
// the aggregator and the store implementations.
//
// Records are schemaless: a Record is a plain map so fields the service does
// not know about survive every read-modify-write untouched. Only a handful of
// fields carry meaning here:
//
//   - roll: 6 ASCII digits, unique across the store
//   - c: CGPA as a string, or "n" when not applicable
//   - g1..g8: grade markers, "r" means referred
//   - s: subject codes the student is referred in
//
// # Store
//
// The Store interface is the only way the core touches persistence. See
// core/store for the MongoDB, SQL and in-memory implementations.
package results
