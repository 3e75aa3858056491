package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordcounter/internal/report"
)

type analyzeOptions struct {
	text     string
	useText  bool
	top      int
	words    []string
	export   string
	noTop    bool
	noColors bool
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [FILE]",
		Short: "Analyze a file or a text string once and print the results",
		Example: `  wordcounter analyze notes.txt --top 20
  wordcounter analyze --text "the cat and the hat" --word the
  wordcounter analyze book.txt --export report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.useText = cmd.Flags().Changed("text")
			switch {
			case opts.useText && len(args) == 1:
				return errors.New("pass either a FILE or --text, not both")
			case !opts.useText && len(args) == 0:
				return errors.New("nothing to analyze: pass a FILE or --text")
			}

			sess, _, err := ctx.newSession()
			if err != nil {
				return err
			}

			if opts.useText {
				err = sess.AnalyzeText(opts.text)
			} else {
				err = sess.AnalyzeFile(args[0])
			}
			if err != nil {
				return err
			}

			stats, err := sess.Statistics()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := !opts.noColors && shouldColorize(out)
			fmt.Fprint(out, report.Statistics(stats))

			if !opts.noTop {
				top := opts.top
				if top <= 0 {
					top = sess.Options().DefaultTopN
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, report.TopWords(sess.Result(), top))
			}

			for _, word := range opts.words {
				result, err := sess.Search(word)
				if err != nil {
					return fmt.Errorf("search %q: %w", word, err)
				}
				kind := report.StatusInfo
				if !result.Found() {
					kind = report.StatusWarn
				}
				fmt.Fprintln(out, report.StatusLine(kind, report.Lookup(result), colorize))
			}

			if cmd.Flags().Changed("export") {
				written, err := sess.Export(strings.TrimSpace(opts.export))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, report.StatusLine(report.StatusOK, fmt.Sprintf("Results saved to '%s'", written), colorize))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Analyze this text instead of a file")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 0, "Number of most frequent words to list (default from config)")
	cmd.Flags().BoolVar(&opts.noTop, "no-top", false, "Skip the most frequent words table")
	cmd.Flags().StringArrayVarP(&opts.words, "word", "w", nil, "Look up a word (repeatable)")
	cmd.Flags().StringVarP(&opts.export, "export", "o", "", "Write the report to this file (\"\" uses the configured default)")
	cmd.Flags().BoolVar(&opts.noColors, "no-color", false, "Disable colored status lines")
	return cmd
}
