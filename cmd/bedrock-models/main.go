// Package main provides the CLI entry point for bedrock-models, a tool that
// lists the Amazon Bedrock foundation models available in a region,
// including models reachable only through Cross-Region Inference profiles.
//
// # Basic Usage
//
// List all models in the default region (us-west-2):
//
//	bedrock-models
//
// List models in another region:
//
//	bedrock-models --region eu-central-1
//
// Show only models available through Cross-Region Inference:
//
//	bedrock-models --cross-region-only
//
// AWS credentials are resolved through the SDK default chain (environment,
// shared config, instance role).
package main

import (
	"errors"
	"fmt"
	"os"
)

// Build information - populated by ldflags during build.
var (
	version = "dev"     // Semantic version (e.g., "v1.0.0")
	commit  = "none"    // Git commit SHA
	date    = "unknown" // Build timestamp
)

// errReported marks errors whose message was already written to stderr by a
// handler, so main must not print them again.
var errReported = errors.New("error already reported")

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
