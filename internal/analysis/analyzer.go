package analysis

import (
	"log/slog"

	"wordcounter/internal/logging"
)

// Statistics summarizes one analysis.
type Statistics struct {
	TotalWords        int
	UniqueWords       int
	AverageRepetition float64
}

// Lookup is the result of searching for a single word.
type Lookup struct {
	Word       string
	Count      int
	Percentage float64
}

// Found reports whether the word occurred at least once.
func (l Lookup) Found() bool {
	return l.Count > 0
}

// Analyzer holds the frequency table of the most recent analysis.
type Analyzer struct {
	tokenizer *Tokenizer
	logger    *slog.Logger

	source string
	table  *FrequencyTable
}

// New constructs an analyzer with an empty result. A nil tokenizer selects
// Unicode default lowercasing; a nil logger discards output.
func New(tokenizer *Tokenizer, logger *slog.Logger) *Analyzer {
	if tokenizer == nil {
		tokenizer = NewTokenizer(defaultLanguage)
	}
	return &Analyzer{
		tokenizer: tokenizer,
		logger:    logging.NewComponentLogger(logger, "analyzer"),
		table:     NewFrequencyTable(),
	}
}

// Analyze tokenizes text and replaces the current result with its counts.
// source labels where the text came from and is only used for reporting.
func (a *Analyzer) Analyze(source, text string) {
	table := NewFrequencyTable()
	for token := range a.tokenizer.All(text) {
		table.Add(token)
	}
	a.table = table
	a.source = source

	a.logger.Info("analysis complete",
		logging.String("source", source),
		logging.Int("total_words", table.Total()),
		logging.Int("unique_words", table.Len()),
	)
}

// Reset discards the current result.
func (a *Analyzer) Reset() {
	a.table = NewFrequencyTable()
	a.source = ""
}

// Source returns the label passed to the last Analyze call.
func (a *Analyzer) Source() string {
	return a.source
}

// TotalWords returns the number of tokens in the last analysis, repeats included.
func (a *Analyzer) TotalWords() int {
	return a.table.Total()
}

// UniqueWords returns the number of distinct tokens in the last analysis.
func (a *Analyzer) UniqueWords() int {
	return a.table.Len()
}

// HasResult reports whether the last analysis found at least one word.
func (a *Analyzer) HasResult() bool {
	return a.table.Total() > 0
}

// Entries returns a copy of the frequency table in first-occurrence order.
func (a *Analyzer) Entries() []WordCount {
	return a.table.Entries()
}

// TopWords returns the n most frequent words. See FrequencyTable.MostCommon.
func (a *Analyzer) TopWords(n int) []WordCount {
	return a.table.MostCommon(n)
}

// Frequency returns how often word occurred, or 0 when it never did.
func (a *Analyzer) Frequency(word string) int {
	return a.table.Count(a.tokenizer.Lower(word))
}

// Percentage expresses count as a share of TotalWords. It returns 0 when
// nothing has been analyzed.
func (a *Analyzer) Percentage(count int) float64 {
	total := a.table.Total()
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Lookup returns the count and share of word.
func (a *Analyzer) Lookup(word string) Lookup {
	count := a.Frequency(word)
	return Lookup{
		Word:       word,
		Count:      count,
		Percentage: a.Percentage(count),
	}
}

// Statistics returns the summary of the last analysis, or ErrNoAnalysis when
// no word has been counted yet.
func (a *Analyzer) Statistics() (Statistics, error) {
	total := a.table.Total()
	unique := a.table.Len()
	if total == 0 || unique == 0 {
		return Statistics{}, ErrNoAnalysis
	}
	return Statistics{
		TotalWords:        total,
		UniqueWords:       unique,
		AverageRepetition: float64(total) / float64(unique),
	}, nil
}
