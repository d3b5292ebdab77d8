// Package importer turns uploaded files into upload batches.
//
// JSON input is either {"results": [...]} or a bare array of objects. CSV
// input has a header row; roll, c, g1..g8, s and uploadMode map to the known
// record fields and any other column is carried through as a string. Empty
// cells are left out of the item so a merge does not touch them.
package importer
