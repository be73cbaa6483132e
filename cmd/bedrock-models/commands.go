// Package main provides the CLI entry point for bedrock-models.
//
// commands.go contains the cobra command definition and its flag
// configuration; the behavior lives in handlers.go.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// defaultRegion is queried when neither --region nor a config file names one.
const defaultRegion = "us-west-2"

// buildRootCmd creates the root command. The root command itself runs the
// listing; there are no subcommands. This is separated from main() to
// facilitate testing.
func buildRootCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "bedrock-models",
		Short: "List available foundation models in Amazon Bedrock",
		Long: `List the foundation models available in an Amazon Bedrock region.

The listing merges two catalogs: the region's native foundation models and
the models reachable only through Cross-Region Inference (CRI) profiles.
Each row shows the model id, provider, CRI routing prefix (or "-" when the
model has none) and its input/output modalities.

The inference-profile lookup is best-effort: if it fails, the table is still
printed without CRI annotations.`,
		Example: `  # List all models in us-west-2
  bedrock-models

  # List models in another region
  bedrock-models --region eu-central-1

  # Show only models served through Cross-Region Inference
  bedrock-models --cross-region-only

  # Limit output to selected providers
  bedrock-models --provider anthropic --provider amazon`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		// SilenceUsage prevents printing usage on every error; SilenceErrors
		// keeps the fatal path down to the single line the handler writes.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.regionSet = cmd.Flags().Changed("region")
			return runList(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.region, "region", defaultRegion,
		"AWS region to query")
	cmd.Flags().BoolVar(&opts.crossRegionOnly, "cross-region-only", false,
		"Show only models available through Cross-Region Inference")
	cmd.Flags().StringArrayVar(&opts.providers, "provider", nil,
		"Limit output to the given provider (repeatable)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to YAML defaults file (or set BEDROCK_MODELS_CONFIG)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false,
		"Enable debug logging (verbose output)")

	return cmd
}
