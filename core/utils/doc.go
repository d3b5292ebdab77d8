// Package utils provides value conversion helpers for schemaless result
// documents, whose fields arrive as JSON strings, JSON numbers, BSON values or
// CSV cells depending on the source.
package utils
