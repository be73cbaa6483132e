package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/haasonsaas/bedrock-models/internal/catalog"
	"github.com/haasonsaas/bedrock-models/internal/config"
)

func withListResult(t *testing.T, listing *catalog.Listing, err error) {
	t.Helper()
	orig := listModels
	listModels = func(ctx context.Context, opts catalog.Options) (*catalog.Listing, error) {
		return listing, err
	}
	t.Cleanup(func() { listModels = orig })
}

func TestRunListPrimaryFailure(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	withListResult(t, nil, errors.New("UnrecognizedClientException: The security token included in the request is invalid."))

	var out, errOut bytes.Buffer
	err := runList(context.Background(), &out, &errOut, listOptions{region: "us-west-2"})

	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
	want := "Error listing models: UnrecognizedClientException: The security token included in the request is invalid.\n"
	if errOut.String() != want {
		t.Errorf("stderr = %q, want %q", errOut.String(), want)
	}
	if out.String() != "" {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
}

func TestRunListDegradedListingStillPrintsTable(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	// A failed inference-profile call surfaces as a listing with an empty
	// CRI mapping; the table must still render with "-" annotations.
	withListResult(t, &catalog.Listing{
		Models: []catalog.ModelSummary{
			{ModelID: "a.foo", ProviderName: "A", InputModalities: []string{"TEXT"}, OutputModalities: []string{"TEXT"}},
		},
		CRITypes: map[string]string{},
	}, nil)

	var out, errOut bytes.Buffer
	if err := runList(context.Background(), &out, &errOut, listOptions{region: "us-west-2"}); err != nil {
		t.Fatalf("runList() error: %v", err)
	}
	if errOut.String() != "" {
		t.Errorf("stderr should be empty, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Total models: 1") {
		t.Errorf("expected full table on stdout, got %q", out.String())
	}
	if !strings.Contains(out.String(), " - ") {
		t.Errorf("expected CRI column to default to %q, got %q", "-", out.String())
	}
}

func TestPrintModelTable(t *testing.T) {
	listing := &catalog.Listing{
		Models: []catalog.ModelSummary{
			{
				ModelID:          "anthropic.claude-v2",
				ProviderName:     "Anthropic",
				InputModalities:  []string{"TEXT"},
				OutputModalities: []string{"TEXT"},
			},
			{
				ModelID:      "b.bar",
				ProviderName: "B",
			},
		},
		CRITypes: map[string]string{"b.bar": "US"},
	}

	var buf bytes.Buffer
	printModelTable(&buf, "us-west-2", false, listing)
	out := buf.String()

	lines := strings.Split(out, "\n")
	if lines[0] != "" {
		t.Errorf("expected leading blank line, got %q", lines[0])
	}
	if lines[1] != "Foundation Models in Amazon Bedrock - Region: us-west-2" {
		t.Errorf("unexpected title line: %q", lines[1])
	}
	if lines[2] != strings.Repeat("=", 130) {
		t.Errorf("unexpected top separator: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Model ID") || !strings.Contains(lines[3], "CRI Type") {
		t.Errorf("unexpected header line: %q", lines[3])
	}
	if lines[4] != strings.Repeat("-", 130) {
		t.Errorf("unexpected header separator: %q", lines[4])
	}

	// Rows sorted by (provider, model id): Anthropic before B.
	if !strings.HasPrefix(lines[5], "anthropic.claude-v2") {
		t.Errorf("unexpected first row: %q", lines[5])
	}
	if !strings.Contains(lines[5], " - ") {
		t.Errorf("native model without a profile should show CRI type %q: %q", "-", lines[5])
	}
	if !strings.Contains(lines[5], "TEXT") {
		t.Errorf("expected modalities in row: %q", lines[5])
	}
	if !strings.HasPrefix(lines[6], "b.bar") || !strings.Contains(lines[6], "US") {
		t.Errorf("unexpected second row: %q", lines[6])
	}

	if lines[7] != strings.Repeat("-", 130) {
		t.Errorf("unexpected closing separator: %q", lines[7])
	}
	if lines[8] != "Total models: 2" {
		t.Errorf("unexpected summary line: %q", lines[8])
	}
	if lines[9] != "" || lines[10] != "" {
		t.Errorf("expected trailing blank line, got %q / %q", lines[9], lines[10])
	}
}

func TestPrintModelTableColumnWidths(t *testing.T) {
	listing := &catalog.Listing{
		Models: []catalog.ModelSummary{
			{
				ModelID:          "anthropic.claude-v2",
				ProviderName:     "Anthropic",
				InputModalities:  []string{"TEXT", "IMAGE"},
				OutputModalities: []string{"TEXT"},
			},
		},
		CRITypes: map[string]string{},
	}

	var buf bytes.Buffer
	printModelTable(&buf, "us-west-2", false, listing)

	lines := strings.Split(buf.String(), "\n")
	row := lines[5]
	// Columns are left-justified at fixed offsets: 50+1, 15+1, 12+1.
	if got := strings.TrimRight(row[:50], " "); got != "anthropic.claude-v2" {
		t.Errorf("model id column = %q", got)
	}
	if got := strings.TrimRight(row[51:66], " "); got != "Anthropic" {
		t.Errorf("provider column = %q", got)
	}
	if got := strings.TrimRight(row[67:79], " "); got != "-" {
		t.Errorf("cri type column = %q", got)
	}
	if !strings.HasPrefix(row[80:], "TEXT, IMAGE") {
		t.Errorf("input column should start at offset 80, row %q", row)
	}
}

func TestPrintModelTableSortsByProviderThenID(t *testing.T) {
	listing := &catalog.Listing{
		Models: []catalog.ModelSummary{
			{ModelID: "z1", ProviderName: "Z"},
			{ModelID: "a2", ProviderName: "A"},
			{ModelID: "a1", ProviderName: "A"},
		},
		CRITypes: map[string]string{},
	}

	var buf bytes.Buffer
	printModelTable(&buf, "us-west-2", false, listing)

	lines := strings.Split(buf.String(), "\n")
	wantOrder := []string{"a1", "a2", "z1"}
	for i, want := range wantOrder {
		row := lines[5+i]
		if !strings.HasPrefix(row, want) {
			t.Errorf("row %d = %q, want prefix %q", i, row, want)
		}
	}
}

func TestPrintModelTableCrossRegionOnly(t *testing.T) {
	listing := &catalog.Listing{
		Models: []catalog.ModelSummary{
			{ModelID: "a.foo", ProviderName: "A"},
			{ModelID: "b.bar", ProviderName: "B"},
		},
		CRITypes: map[string]string{"b.bar": "US"},
	}

	var buf bytes.Buffer
	printModelTable(&buf, "us-west-2", true, listing)
	out := buf.String()

	if !strings.Contains(out, "Cross-Region Inference Models in Amazon Bedrock - Region: us-west-2") {
		t.Errorf("missing cross-region title: %q", out)
	}
	if strings.Contains(out, "a.foo") {
		t.Errorf("non-CRI model should be filtered out: %q", out)
	}
	if !strings.Contains(out, "Total models: 1") {
		t.Errorf("unexpected total: %q", out)
	}
}

func TestPrintModelTableNoCrossRegionModels(t *testing.T) {
	listing := &catalog.Listing{
		Models:   []catalog.ModelSummary{{ModelID: "a.foo", ProviderName: "A"}},
		CRITypes: map[string]string{},
	}

	var buf bytes.Buffer
	printModelTable(&buf, "eu-west-3", true, listing)

	want := "No models with Cross-Region Inference available in region: eu-west-3\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintModelTableNoModels(t *testing.T) {
	listing := &catalog.Listing{CRITypes: map[string]string{}}

	var buf bytes.Buffer
	printModelTable(&buf, "sa-east-1", false, listing)

	want := "No models found in region: sa-east-1\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
