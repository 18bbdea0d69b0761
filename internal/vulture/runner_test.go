package vulture

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mullzhang/vulturediff/pkg/shared/errors"
)

func TestOptionsCommonFlags(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    []string
	}{
		{
			name:    "Empty options produce no flags",
			options: Options{MinConfidence: -1},
			want:    nil,
		},
		{
			name: "All options set keeps documented order",
			options: Options{
				ConfigPath:       "pyproject.toml",
				Exclude:          "migrations,build",
				IgnoreNames:      "visit_*",
				IgnoreDecorators: "@app.route",
				MinConfidence:    80,
				SortBySize:       true,
				Verbose:          true,
			},
			want: []string{
				"--config", "pyproject.toml",
				"--exclude", "migrations,build",
				"--ignore-names", "visit_*",
				"--ignore-decorators", "@app.route",
				"--min-confidence", "80",
				"--sort-by-size",
				"--verbose",
			},
		},
		{
			name:    "Zero min-confidence is forwarded",
			options: Options{MinConfidence: 0},
			want:    []string{"--min-confidence", "0"},
		},
		{
			name:    "Negative min-confidence means unset",
			options: Options{MinConfidence: -1, SortBySize: true},
			want:    []string{"--sort-by-size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.options.CommonFlags())
		})
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	runner := NewExecRunner("sh", hclog.NewNullLogger())

	result, err := runner.Run([]string{"-c", "echo line one; echo; echo line two; echo oops >&2"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, []string{"line one", "line two"}, result.StdoutLines)
	assert.Equal(t, []string{"oops"}, result.StderrLines)
	assert.Equal(t, []string{"sh", "-c", "echo line one; echo; echo line two; echo oops >&2"}, result.Command)
}

func TestExecRunnerAcceptsFindingsExitCode(t *testing.T) {
	runner := NewExecRunner("sh", hclog.NewNullLogger())

	result, err := runner.Run([]string{"-c", "echo finding; exit 3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, []string{"finding"}, result.StdoutLines)
}

func TestExecRunnerScanFailure(t *testing.T) {
	runner := NewExecRunner("sh", hclog.NewNullLogger())

	_, err := runner.Run([]string{"-c", "echo broken >&2; exit 2"}, nil)
	var failure *errors.ScanFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.ExitCode)
	assert.Equal(t, "broken", failure.Stderr)
}

func TestExecRunnerScanFailureWithoutStderr(t *testing.T) {
	runner := NewExecRunner("sh", hclog.NewNullLogger())

	_, err := runner.Run([]string{"-c", "exit 1"}, nil)
	var failure *errors.ScanFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "(no stderr)", failure.Stderr)
}

func TestExecRunnerExecutableNotFound(t *testing.T) {
	runner := NewExecRunner("definitely-not-a-vulture-binary", hclog.NewNullLogger())

	_, err := runner.Run(nil, []string{"src"})
	var execErr *errors.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "definitely-not-a-vulture-binary", execErr.Bin)
}
