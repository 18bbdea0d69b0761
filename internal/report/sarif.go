package report

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/mullzhang/vulturediff/internal/classifier"
	"github.com/mullzhang/vulturediff/internal/finding"
	"github.com/mullzhang/vulturediff/pkg/shared/files"
)

const (
	toolName           = "vulturediff"
	toolInformationURI = "https://github.com/mullzhang/vulturediff"

	RuleTestOnly        = "test-only-candidate"
	RuleStillUnused     = "unused-with-tests"
	RuleOnlyInWithTests = "only-in-with-tests-scan"
)

type sarifCategory struct {
	ruleID      string
	description string
	level       string
	findings    []finding.Finding
}

// WriteSARIF writes the three partitions as a single-run SARIF 2.1.0 document,
// one result per finding, so code hosts can annotate the flagged lines.
func WriteSARIF(outputPath string, outcome *classifier.Outcome) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	run.Properties = sarif.Properties{
		"run_id": uuid.NewString(),
	}

	categories := []sarifCategory{
		{
			ruleID:      RuleTestOnly,
			description: "Symbol unused in production code alone; exercised only by tests.",
			level:       "note",
			findings:    outcome.TestOnly,
		},
		{
			ruleID:      RuleStillUnused,
			description: "Symbol reported unused even when test usage is considered.",
			level:       "warning",
			findings:    outcome.StillUnused,
		},
		{
			ruleID:      RuleOnlyInWithTests,
			description: "Symbol reported unused only once test paths are included.",
			level:       "note",
			findings:    outcome.OnlyInWithTests,
		},
	}

	for _, category := range categories {
		rule := run.AddRule(category.ruleID).
			WithDescription(category.description).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: category.level,
			})

		for _, f := range category.findings {
			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(f.Raw())).
				WithLevel(category.level)

			// Unstructured findings have no location to point at.
			if s, ok := f.(finding.Structured); ok {
				location := sarif.NewLocation().WithPhysicalLocation(
					sarif.NewPhysicalLocation().
						WithArtifactLocation(sarif.NewArtifactLocation().WithUri(s.Path)).
						WithRegion(sarif.NewRegion().WithStartLine(s.Line)),
				)
				result.WithLocations([]*sarif.Location{location})
			}
			run.AddResult(result)
		}
	}
	doc.AddRun(run)

	var buf bytes.Buffer
	if err := doc.PrettyWrite(&buf); err != nil {
		return fmt.Errorf("failed to render SARIF report: %w", err)
	}
	return files.WriteArtifact(outputPath, buf.Bytes())
}
