package report

import "wordcounter/internal/analysis"

// Source is the read-only view of an analysis that reports are built from.
// *analysis.Analyzer satisfies it.
type Source interface {
	TotalWords() int
	UniqueWords() int
	TopWords(n int) []analysis.WordCount
	Percentage(count int) float64
}
