package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli generates synthetic restaurant reviews from the command line.",
	Long: `A CLI for the review generator. It uses the same configuration, model and
language model backend as the web form, without starting the HTTP server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
