// Package logging assembles the structured slog loggers used by wordcounter.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// Interactive sessions wrap the handler so every record carries a session_id,
// which makes one run easy to pick out of a shared log file. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same keys.
package logging
