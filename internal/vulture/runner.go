// Package vulture wraps the external vulture scanner as a line-oriented
// subprocess collaborator.
package vulture

import (
	"bytes"
	goerrors "errors"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mullzhang/vulturediff/pkg/shared/errors"
)

// Exit codes that represent a successful analysis run: 0 means ran clean with
// no findings, 3 means ran and found issues. Anything else is an
// infrastructure failure.
var acceptedExitCodes = map[int]struct{}{
	0: {},
	3: {},
}

// ScanResult is the outcome of one scanner invocation. Immutable after
// construction.
type ScanResult struct {
	Command     []string
	ExitCode    int
	StdoutLines []string
	StderrLines []string
}

// Runner executes one scanner pass over a path set. The interface exists so
// tests can substitute a fake without invoking a real subprocess.
type Runner interface {
	Run(flags, paths []string) (*ScanResult, error)
}

// ExecRunner runs the scanner binary as a subprocess, fully buffering its
// output. There is no streaming and no timeout; a hanging scanner blocks the
// run, which is an accepted limitation.
type ExecRunner struct {
	bin    string
	logger hclog.Logger
}

// NewExecRunner creates an ExecRunner for the given scanner binary.
func NewExecRunner(bin string, logger hclog.Logger) *ExecRunner {
	return &ExecRunner{
		bin:    bin,
		logger: logger,
	}
}

// Run builds the command as [bin, flags..., paths...] and executes it. A
// non-zero exit code is not an error by itself: only codes outside the
// accepted success set fail, carrying the captured stderr as diagnostic text.
func (r *ExecRunner) Run(flags, paths []string) (*ScanResult, error) {
	args := make([]string, 0, len(flags)+len(paths))
	args = append(args, flags...)
	args = append(args, paths...)

	command := append([]string{r.bin}, args...)
	r.logger.Debug("invoking scanner", "command", command)

	cmd := exec.Command(r.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !goerrors.As(err, &exitErr) {
			r.logger.Debug("scanner could not be started", "bin", r.bin, "error", err)
			return nil, errors.NewExecutionError(r.bin, err)
		}
		exitCode = exitErr.ExitCode()
	}

	result := &ScanResult{
		Command:     command,
		ExitCode:    exitCode,
		StdoutLines: nonBlankLines(stdout.String()),
		StderrLines: nonBlankLines(stderr.String()),
	}

	if _, ok := acceptedExitCodes[exitCode]; !ok {
		stderrText := strings.Join(result.StderrLines, "\n")
		if stderrText == "" {
			stderrText = "(no stderr)"
		}
		r.logger.Debug("scanner run failed", "exitCode", exitCode)
		return nil, errors.NewScanFailure(exitCode, stderrText)
	}

	r.logger.Debug("scanner run finished", "exitCode", exitCode, "findings", len(result.StdoutLines))
	return result, nil
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
