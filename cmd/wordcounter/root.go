package main

import (
	"github.com/spf13/cobra"

	"wordcounter/internal/session"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "wordcounter",
		Short:         "Count word frequencies in text files or typed text",
		Long:          "wordcounter tokenizes text, tallies word occurrences, and reports statistics,\nthe most frequent words, single-word lookups, and exportable reports.\n\nRun without a subcommand to start the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, logger, err := ctx.newSession()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			menu := session.NewMenu(sess, cmd.InOrStdin(), out, shouldColorize(out), logger)
			return menu.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
