// Package main provides the CLI entry point for bedrock-models.
//
// handlers.go contains the command behavior: option resolution, the listing
// call, and table rendering. Handlers take io.Writer so tests can capture
// output.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/haasonsaas/bedrock-models/internal/catalog"
	"github.com/haasonsaas/bedrock-models/internal/config"
)

// listOptions carries the resolved flag values for the listing run.
type listOptions struct {
	region          string
	regionSet       bool // --region was given explicitly
	crossRegionOnly bool
	providers       []string
	configPath      string
	debug           bool
}

// separatorWidth is the width of the table rule lines.
const separatorWidth = 130

// listModels allows overriding the listing call for testing.
var listModels = func(ctx context.Context, opts catalog.Options) (*catalog.Listing, error) {
	return catalog.NewLister(opts).List(ctx)
}

// runList resolves defaults, fetches the merged model listing and renders
// it. A failure of the primary listing call is reported as a single line on
// errOut and returned as errReported so main exits non-zero without printing
// a second message.
func runList(ctx context.Context, out, errOut io.Writer, opts listOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if !opts.regionSet && cfg.Region != "" {
		opts.region = cfg.Region
	}
	if len(opts.providers) == 0 {
		opts.providers = cfg.Providers
	}

	listing, err := listModels(ctx, catalog.Options{
		Region:    opts.region,
		Providers: opts.providers,
		Logger:    slog.Default(),
	})
	if err != nil {
		fmt.Fprintf(errOut, "Error listing models: %v\n", err)
		return errReported
	}

	printModelTable(out, opts.region, opts.crossRegionOnly, listing)
	return nil
}

// printModelTable renders the merged listing as a fixed-width table, or one
// of the two empty-result messages.
func printModelTable(out io.Writer, region string, crossRegionOnly bool, listing *catalog.Listing) {
	models := listing.Models
	title := "Foundation Models in Amazon Bedrock - Region: " + region

	if crossRegionOnly {
		var filtered []catalog.ModelSummary
		for _, m := range models {
			if _, ok := listing.CRITypes[m.ModelID]; ok {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) == 0 {
			fmt.Fprintf(out, "No models with Cross-Region Inference available in region: %s\n", region)
			return
		}
		models = filtered
		title = "Cross-Region Inference Models in Amazon Bedrock - Region: " + region
	}

	if len(models) == 0 {
		fmt.Fprintf(out, "No models found in region: %s\n", region)
		return
	}

	sort.Slice(models, func(i, j int) bool {
		if models[i].ProviderName != models[j].ProviderName {
			return models[i].ProviderName < models[j].ProviderName
		}
		return models[i].ModelID < models[j].ModelID
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("=", separatorWidth))
	fmt.Fprintf(out, "%-50s %-15s %-12s %-8s %-8s\n", "Model ID", "Provider", "CRI Type", "Input", "Output")
	fmt.Fprintln(out, strings.Repeat("-", separatorWidth))

	for _, m := range models {
		criType := listing.CRITypes[m.ModelID]
		if criType == "" {
			criType = "-"
		}
		fmt.Fprintf(out, "%-50s %-15s %-12s %-8s %-8s\n",
			m.ModelID,
			m.ProviderName,
			criType,
			strings.Join(m.InputModalities, ", "),
			strings.Join(m.OutputModalities, ", "),
		)
	}

	fmt.Fprintln(out, strings.Repeat("-", separatorWidth))
	fmt.Fprintf(out, "Total models: %d\n\n", len(models))
}
