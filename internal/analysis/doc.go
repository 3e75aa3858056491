// Package analysis turns raw text into a case-insensitive word-frequency table
// and answers the statistics, ranking, and lookup queries built on top of it.
//
// A Tokenizer lowercases the whole input with a locale-aware caser and yields
// maximal runs of word characters (letters, numbers, underscore). The Analyzer
// feeds those tokens into a FrequencyTable that remembers first-insertion order,
// so rankings break ties by the order in which words first appeared.
//
// Each call to Analyzer.Analyze replaces the previous result wholesale;
// nothing accumulates across documents. The sentinel errors in errors.go are
// shared with the input and reporting packages so callers can classify any
// failure with errors.Is.
package analysis
