package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordcounter/internal/analysis"
)

const ruleWidth = 60

// Statistics renders the summary block shown after every analysis.
func Statistics(stats analysis.Statistics) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	b.WriteString(rule + "\n")
	b.WriteString("WORD ANALYSIS STATISTICS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total words:        %s\n", humanize.Comma(int64(stats.TotalWords)))
	fmt.Fprintf(&b, "Unique words:       %s\n", humanize.Comma(int64(stats.UniqueWords)))
	fmt.Fprintf(&b, "Average repetition: %.2f\n", stats.AverageRepetition)
	return b.String()
}

// TopWords renders the n most frequent words of src as a table with rank,
// word, count, and share of all words.
func TopWords(src Source, n int) string {
	rows := src.TopWords(n)

	var b strings.Builder
	fmt.Fprintf(&b, "TOP %d MOST FREQUENT WORDS\n", n)
	if len(rows) == 0 {
		b.WriteString("(no words)\n")
		return b.String()
	}

	body := make([][]string, 0, len(rows))
	for i, row := range rows {
		body = append(body, []string{
			strconv.Itoa(i + 1),
			row.Word,
			humanize.Comma(int64(row.Count)),
			formatPercent(src.Percentage(row.Count)),
		})
	}
	b.WriteString(renderTable(
		[]string{"#", "Word", "Count", "Share"},
		body,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	))
	b.WriteByte('\n')
	return b.String()
}

// Lookup renders the result of a single-word search.
func Lookup(result analysis.Lookup) string {
	if !result.Found() {
		return fmt.Sprintf("'%s' was not found", result.Word)
	}
	times := "times"
	if result.Count == 1 {
		times = "time"
	}
	return fmt.Sprintf("'%s' appears %s %s (%s)", result.Word, humanize.Comma(int64(result.Count)), times, formatPercent(result.Percentage))
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
