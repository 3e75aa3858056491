// Package session owns the analyzer for one interactive run and exposes the
// menu that drives it.
//
// Session wraps a single analysis.Analyzer together with its exporter and
// defaults. Every query checks that a successful analysis exists before
// touching the frequency table, returning analysis.ErrNoAnalysis otherwise, and
// blank input is rejected with analysis.ErrEmptyInput without disturbing the
// previous result.
//
// Menu is the text interface on top of a Session. It reads lines through a
// context-aware reader so an interrupt ends the loop cleanly, and it turns every
// returned error into a status line instead of aborting the run.
package session
