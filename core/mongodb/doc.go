// Package mongodb configures the MongoDB client used by the results store.
//
// Connect mirrors what the service needs from a fresh connection: pool and
// timeout settings, majority writes with retries, zlib wire compression, a
// primary ping, and the results indexes (unique roll, c, sparse s).
// Connection reuse and retry live in core/database.Keeper.
package mongodb
