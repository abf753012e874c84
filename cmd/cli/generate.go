package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/wire"
)

var maxLength int

var generateCmd = &cobra.Command{
	Use:   "generate [snippet]",
	Short: "Generates three synthetic reviews continuing the given snippet",
	Long: `Generates three synthetic restaurant reviews that continue the snippet.
When no snippet is given it is asked for interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snippet, err := snippetFromArgs(args)
		if err != nil {
			return err
		}

		req := core.UserRequest{Snippet: snippet, MaxLength: maxLength}
		ctx := context.Background()

		app, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		set, err := app.Reviews.Generate(ctx, req)
		if err != nil {
			var vErr *core.ValidationError
			if errors.As(err, &vErr) {
				return fmt.Errorf("invalid input: %w", err)
			}
			return err
		}

		printReviews(cmd.OutOrStdout(), app.Content, set)
		return nil
	},
}

func snippetFromArgs(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var snippet string
	prompt := &survey.Input{
		Message: "Text snippet to continue:",
		Help:    "The opening words of the review, e.g. \"The pasta was\".",
	}
	if err := survey.AskOne(prompt, &snippet, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("failed to read snippet: %w", err)
	}
	return snippet, nil
}

func printReviews(w io.Writer, content *core.FormContent, set *core.ReviewSet) {
	heading := color.New(color.FgCyan, color.Bold)

	for _, review := range set.Reviews {
		heading.Fprintln(w, content.HeadingFor(review))
		fmt.Fprintln(w, strings.TrimSpace(review.Text))
		fmt.Fprintln(w)
	}
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	generateCmd.Flags().IntVarP(&maxLength, "max-length", "n", core.MinMaxLength,
		fmt.Sprintf("maximum number of tokens to generate (%d to %d)", core.MinMaxLength, core.MaxMaxLength))
	rootCmd.AddCommand(generateCmd)
}
