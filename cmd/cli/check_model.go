package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-generator/internal/config"
	"github.com/sevigo/review-generator/internal/llm"
	"github.com/sevigo/review-generator/internal/logger"
)

var checkModelCmd = &cobra.Command{
	Use:   "check-model",
	Short: "Loads the pretrained model files and prints a summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		output, closeOutput := logger.OpenOutput(cfg.Logging)
		defer closeOutput()
		log := logger.NewLogger(cfg.Logging, output)

		assets, err := llm.LoadModelAssets(cfg.AI.ModelPath, log)
		if err != nil {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), "model check failed")
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "PATH\t%s\n", assets.Path)
		fmt.Fprintf(w, "MODEL TYPE\t%s\n", assets.ModelType)
		fmt.Fprintf(w, "CONTEXT WINDOW\t%d\n", assets.ContextWindow)
		fmt.Fprintf(w, "DEFAULT LENGTH\t%d\n", assets.DefaultMaxLength)
		fmt.Fprintf(w, "PROVIDER\t%s (%s)\n", cfg.AI.LLMProvider, cfg.AI.GeneratorModel)
		if err := w.Flush(); err != nil {
			return err
		}

		slog.Debug("model check complete", "path", assets.Path)
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "model OK")
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(checkModelCmd)
}
