package report

import (
	"encoding/json"
	"fmt"

	"github.com/mullzhang/vulturediff/internal/classifier"
	"github.com/mullzhang/vulturediff/internal/finding"
	"github.com/mullzhang/vulturediff/pkg/shared/files"
)

// Payload is the machine-readable report document.
type Payload struct {
	Metadata            Metadata         `json:"metadata"`
	Counts              Counts           `json:"counts"`
	TestOnlyCandidates  []finding.Record `json:"test_only_candidates"`
	UnusedEvenWithTests []finding.Record `json:"unused_even_with_tests"`
	OnlyInWithTestsScan []finding.Record `json:"only_in_with_tests_scan"`
}

// Metadata captures both executed commands and their exit codes.
type Metadata struct {
	ProdOnlyCommand  []string  `json:"prod_only_command"`
	WithTestsCommand []string  `json:"with_tests_command"`
	ProdPaths        []string  `json:"prod_paths"`
	TestPaths        []string  `json:"test_paths"`
	ExitCodes        ExitCodes `json:"exit_codes"`
}

type ExitCodes struct {
	ProdOnly  int `json:"prod_only"`
	WithTests int `json:"with_tests"`
}

// Counts holds the five summary integers of the report.
type Counts struct {
	UnusedProdOnly       int `json:"unused_prod_only"`
	UnusedWithTests      int `json:"unused_with_tests"`
	TestOnlyCandidates   int `json:"test_only_candidates"`
	StillUnusedWithTests int `json:"still_unused_with_tests"`
	OnlyInWithTestsScan  int `json:"only_in_with_tests_scan"`
}

// BuildPayload converts an outcome into the report document.
func BuildPayload(outcome *classifier.Outcome) Payload {
	return Payload{
		Metadata: Metadata{
			ProdOnlyCommand:  outcome.ProdRun.Command,
			WithTestsCommand: outcome.WithTestsRun.Command,
			ProdPaths:        outcome.ProdPaths,
			TestPaths:        outcome.TestPaths,
			ExitCodes: ExitCodes{
				ProdOnly:  outcome.ProdRun.ExitCode,
				WithTests: outcome.WithTestsRun.ExitCode,
			},
		},
		Counts: Counts{
			UnusedProdOnly:       len(outcome.ProdFindings),
			UnusedWithTests:      len(outcome.WithTestsFindings),
			TestOnlyCandidates:   len(outcome.TestOnly),
			StillUnusedWithTests: len(outcome.StillUnused),
			OnlyInWithTestsScan:  len(outcome.OnlyInWithTests),
		},
		TestOnlyCandidates:  serializeFindings(outcome.TestOnly),
		UnusedEvenWithTests: serializeFindings(outcome.StillUnused),
		OnlyInWithTestsScan: serializeFindings(outcome.OnlyInWithTests),
	}
}

// WriteJSON writes the report document as UTF-8 text with stable indentation
// and a trailing newline, creating parent directories if absent.
func WriteJSON(outputPath string, outcome *classifier.Outcome) error {
	data, err := json.MarshalIndent(BuildPayload(outcome), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return files.WriteArtifact(outputPath, append(data, '\n'))
}

func serializeFindings(findings []finding.Finding) []finding.Record {
	records := make([]finding.Record, 0, len(findings))
	for _, f := range findings {
		records = append(records, finding.Serialize(f))
	}
	return records
}
