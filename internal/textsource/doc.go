// Package textsource supplies decoded text to the analyzer.
//
// ReadFile loads a whole file, rejects content that is not valid UTF-8, and
// strips a leading byte-order mark. LineReader and CollectLines gather
// interactive input line by line until a sentinel line is entered. Failures are
// tagged with the analysis sentinel errors so callers can tell a missing file
// from an encoding problem.
package textsource
