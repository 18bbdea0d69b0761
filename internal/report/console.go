// Package report renders a classification outcome to the console and to
// optional machine-readable artifacts.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mullzhang/vulturediff/internal/classifier"
	"github.com/mullzhang/vulturediff/internal/finding"
	"github.com/mullzhang/vulturediff/pkg/shared"
)

var sectionTitle = color.New(color.Bold)

// WriteConsole prints the fixed-order summary block followed by the three
// partition sections. Empty partitions render as "(none)"; longer ones are cut
// at maxItems with a trailer.
func WriteConsole(w io.Writer, outcome *classifier.Outcome, maxItems int) {
	fmt.Fprintln(w, "=== Double-pass Vulture Report ===")
	fmt.Fprintf(w, "prod-only command : %s\n", shared.ShellJoin(outcome.ProdRun.Command))
	fmt.Fprintf(w, "with-tests command: %s\n", shared.ShellJoin(outcome.WithTestsRun.Command))
	fmt.Fprintf(w, "prod paths        : %s\n", strings.Join(outcome.ProdPaths, ", "))
	fmt.Fprintf(w, "test paths        : %s\n", strings.Join(outcome.TestPaths, ", "))
	fmt.Fprintf(w, "exit codes        : prod-only=%d, with-tests=%d\n",
		outcome.ProdRun.ExitCode, outcome.WithTestsRun.ExitCode)
	fmt.Fprintf(w, "unused(prod-only) : %d\n", len(outcome.ProdFindings))
	fmt.Fprintf(w, "unused(with-tests): %d\n", len(outcome.WithTestsFindings))
	fmt.Fprintf(w, "test-only         : %d\n", len(outcome.TestOnly))
	fmt.Fprintf(w, "still-unused      : %d\n", len(outcome.StillUnused))
	fmt.Fprintf(w, "only-in-with-tests: %d\n", len(outcome.OnlyInWithTests))

	printSection(w, "TEST-ONLY CANDIDATES", outcome.TestOnly, maxItems)
	printSection(w, "UNUSED EVEN WITH TESTS", outcome.StillUnused, maxItems)
	printSection(w, "ONLY IN WITH-TESTS SCAN", outcome.OnlyInWithTests, maxItems)
}

func printSection(w io.Writer, title string, findings []finding.Finding, maxItems int) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "[%s]\n", sectionTitle.Sprint(title))
	if len(findings) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	shown := findings
	if len(shown) > maxItems {
		shown = shown[:maxItems]
	}
	for _, f := range shown {
		fmt.Fprintln(w, f.Raw())
	}

	if remaining := len(findings) - maxItems; remaining > 0 {
		fmt.Fprintf(w, "... (%d more)\n", remaining)
	}
}
