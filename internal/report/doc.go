// Package report renders analysis results for people.
//
// Console output (statistics, top-N tables, search results, status lines) is
// returned as strings so the interactive menu and the one-shot analyze command
// can share it. Export writes the fixed plain-text report layout to a file while
// holding an advisory lock, after checking that the target directory is
// writable.
package report
