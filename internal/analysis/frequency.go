package analysis

import (
	"cmp"
	"slices"
)

// WordCount is one entry of a frequency table.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable maps tokens to occurrence counts and remembers the order in
// which each token was first added.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments the count for token, creating it on first sight.
func (t *FrequencyTable) Add(token string) {
	if _, ok := t.counts[token]; !ok {
		t.order = append(t.order, token)
	}
	t.counts[token]++
	t.total++
}

// Count returns the occurrences of token, or 0 when it was never added.
func (t *FrequencyTable) Count(token string) int {
	if t == nil {
		return 0
	}
	return t.counts[token]
}

// Len reports the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total reports the sum of all counts.
func (t *FrequencyTable) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Entries returns every token with its count in first-insertion order.
func (t *FrequencyTable) Entries() []WordCount {
	if t == nil {
		return nil
	}
	entries := make([]WordCount, 0, len(t.order))
	for _, word := range t.order {
		entries = append(entries, WordCount{Word: word, Count: t.counts[word]})
	}
	return entries
}

// MostCommon returns the n entries with the highest counts, descending.
// Equal counts keep first-insertion order. n larger than Len returns every
// entry; n <= 0 returns an empty slice.
func (t *FrequencyTable) MostCommon(n int) []WordCount {
	if n <= 0 || t.Len() == 0 {
		return []WordCount{}
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
