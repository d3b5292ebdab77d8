// Package stats summarizes the stored result corpus.
//
// Summarize scans every record on each call and derives pass/fail counts, the
// average CGPA and the most common referred subjects. Nothing is persisted or
// cached between calls; concurrent callers that arrive while a scan is in
// flight share that scan's result.
package stats
