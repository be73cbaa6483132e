// Package catalog lists Amazon Bedrock foundation models for a region and
// annotates them with Cross-Region Inference availability derived from the
// region's inference profiles.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
)

// ModelSummary describes one foundation model.
type ModelSummary struct {
	ModelID          string
	ProviderName     string
	InputModalities  []string
	OutputModalities []string
}

// Listing is the merged result of the native model catalog and the
// inference-profile catalog for one region.
type Listing struct {
	// Models holds the native models plus a synthesized entry for every
	// model reachable only through an inference profile. ModelID is unique
	// within the slice; native entries win over synthesized ones.
	Models []ModelSummary

	// CRITypes maps a base model id to its routing prefix ("US", "EU", ...).
	CRITypes map[string]string
}

// BedrockClient is the subset of the Bedrock control-plane API the lister
// uses. This allows for mocking in tests.
type BedrockClient interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
	ListInferenceProfiles(ctx context.Context, params *bedrock.ListInferenceProfilesInput, optFns ...func(*bedrock.Options)) (*bedrock.ListInferenceProfilesOutput, error)
}

// clientFactory allows overriding client creation for testing.
var clientFactory = func(ctx context.Context, region string) (BedrockClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return bedrock.NewFromConfig(cfg), nil
}

// Options configures a Lister.
type Options struct {
	// Region is the AWS region to query.
	Region string

	// Providers limits results to the named providers. A model matches when
	// its provider name equals an entry case-insensitively, or its model id
	// starts with "<entry>.". Empty means all providers.
	Providers []string

	// Logger receives diagnostic output (default: slog.Default()).
	Logger *slog.Logger
}

// Lister fetches and merges the two Bedrock model catalogs for one region.
type Lister struct {
	opts   Options
	logger *slog.Logger
}

// NewLister creates a Lister for the given options.
func NewLister(opts Options) *Lister {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Lister{opts: opts, logger: logger}
}

// List performs the two catalog calls and merges the results.
//
// A failure of the foundation-model call is returned to the caller. The
// inference-profile call is best-effort: when it fails, the listing degrades
// to an empty CRI mapping and the reason is logged at debug level.
func (l *Lister) List(ctx context.Context) (*Listing, error) {
	client, err := clientFactory(ctx, l.opts.Region)
	if err != nil {
		return nil, fmt.Errorf("create bedrock client: %w", err)
	}

	// Returned unwrapped: the CLI prefixes this with its own
	// "Error listing models:" context.
	native, err := client.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return nil, err
	}

	models := make([]ModelSummary, 0, len(native.ModelSummaries))
	nativeIDs := make(map[string]bool, len(native.ModelSummaries))
	for _, summary := range native.ModelSummaries {
		m := ModelSummary{
			ModelID:      aws.ToString(summary.ModelId),
			ProviderName: aws.ToString(summary.ProviderName),
		}
		for _, mod := range summary.InputModalities {
			m.InputModalities = append(m.InputModalities, string(mod))
		}
		for _, mod := range summary.OutputModalities {
			m.OutputModalities = append(m.OutputModalities, string(mod))
		}
		models = append(models, m)
		nativeIDs[m.ModelID] = true
	}

	criTypes := l.fetchCRITypes(ctx, client)

	// Models served only through an inference profile have no native catalog
	// entry; synthesize one so they still show up.
	for baseID := range criTypes {
		if nativeIDs[baseID] {
			continue
		}
		models = append(models, ModelSummary{
			ModelID:      baseID,
			ProviderName: TitleProvider(baseID),
		})
	}

	if len(l.opts.Providers) > 0 {
		models = filterByProvider(models, l.opts.Providers)
	}

	return &Listing{Models: models, CRITypes: criTypes}, nil
}

// fetchCRITypes builds the base-model-id -> CRI type mapping from the
// region's inference profiles. Never fails: a service error yields an empty
// mapping.
func (l *Lister) fetchCRITypes(ctx context.Context, client BedrockClient) map[string]string {
	criTypes := map[string]string{}

	profiles, err := client.ListInferenceProfiles(ctx, &bedrock.ListInferenceProfilesInput{})
	if err != nil {
		l.logger.Debug("listing inference profiles failed", "error", errorMessage(err))
	} else {
		for _, profile := range profiles.InferenceProfileSummaries {
			profileID := aws.ToString(profile.InferenceProfileId)
			criType, baseID := ExtractCRIInfo(profileID)
			l.logger.Debug("inference profile",
				"profile_id", profileID,
				"cri_type", criType,
				"base_id", baseID,
			)
			if criType != "" && baseID != "" {
				criTypes[baseID] = criType
			}
		}
	}

	l.logger.Debug("cross-region inference mapping built",
		"count", len(criTypes),
		"mapping", criTypes,
	)
	return criTypes
}

// filterByProvider filters models by provider names.
func filterByProvider(models []ModelSummary, providers []string) []ModelSummary {
	result := make([]ModelSummary, 0, len(models))
	for _, m := range models {
		providerLower := strings.ToLower(m.ProviderName)
		idLower := strings.ToLower(m.ModelID)
		for _, p := range providers {
			pLower := strings.ToLower(strings.TrimSpace(p))
			if pLower == "" {
				continue
			}
			if providerLower == pLower || strings.HasPrefix(idLower, pLower+".") {
				result = append(result, m)
				break
			}
		}
	}
	return result
}
