// Package classifier runs the scanner twice, over production paths alone and
// over production plus test paths, and partitions the findings by how test
// inclusion changes their reported status.
package classifier

import (
	"github.com/mullzhang/vulturediff/internal/finding"
	"github.com/mullzhang/vulturediff/internal/vulture"
	"github.com/mullzhang/vulturediff/pkg/shared"
)

// Outcome aggregates both scan results, their parsed findings, and the three
// classified partitions. Each partition is sorted deterministically.
type Outcome struct {
	ProdRun      *vulture.ScanResult
	WithTestsRun *vulture.ScanResult

	ProdPaths []string
	TestPaths []string

	ProdFindings      []finding.Finding
	WithTestsFindings []finding.Finding

	// TestOnly holds findings reported in the prod-only scan that disappear
	// once tests are included: candidates exercised only by tests.
	TestOnly []finding.Finding
	// StillUnused holds every finding of the combined scan, the most severe
	// category.
	StillUnused []finding.Finding
	// OnlyInWithTests holds findings that appear only once test paths are
	// added: scanner nondeterminism or unused test-support symbols. Always a
	// subset of StillUnused.
	OnlyInWithTests []finding.Finding
}

// Classify performs the double pass. Path lists are deduplicated preserving
// first-seen order; the combined set keeps prod paths first so repeated runs
// produce identical commands. The two invocations are sequential, prod first,
// so the error that surfaces first is deterministic when both would fail.
func Classify(runner vulture.Runner, commonFlags, prodPaths, testPaths []string) (*Outcome, error) {
	prodPaths = shared.DedupeInOrder(prodPaths)
	testPaths = shared.DedupeInOrder(testPaths)
	combinedPaths := shared.DedupeInOrder(append(append([]string{}, prodPaths...), testPaths...))

	prodRun, err := runner.Run(commonFlags, prodPaths)
	if err != nil {
		return nil, err
	}
	withTestsRun, err := runner.Run(commonFlags, combinedPaths)
	if err != nil {
		return nil, err
	}

	prodFindings := finding.ParseLines(prodRun.StdoutLines)
	withTestsFindings := finding.ParseLines(withTestsRun.StdoutLines)

	prodLookup := finding.BuildLookup(prodFindings)
	withTestsLookup := finding.BuildLookup(withTestsFindings)

	outcome := &Outcome{
		ProdRun:           prodRun,
		WithTestsRun:      withTestsRun,
		ProdPaths:         prodPaths,
		TestPaths:         testPaths,
		ProdFindings:      prodFindings,
		WithTestsFindings: withTestsFindings,
	}

	for key, f := range prodLookup {
		if _, ok := withTestsLookup[key]; !ok {
			outcome.TestOnly = append(outcome.TestOnly, f)
		}
	}
	for key, f := range withTestsLookup {
		outcome.StillUnused = append(outcome.StillUnused, f)
		if _, ok := prodLookup[key]; !ok {
			outcome.OnlyInWithTests = append(outcome.OnlyInWithTests, f)
		}
	}

	finding.Sort(outcome.TestOnly)
	finding.Sort(outcome.StillUnused)
	finding.Sort(outcome.OnlyInWithTests)

	return outcome, nil
}
