package diff

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mullzhang/vulturediff/internal/classifier"
	"github.com/mullzhang/vulturediff/internal/report"
	"github.com/mullzhang/vulturediff/internal/vulture"
	"github.com/mullzhang/vulturediff/pkg/shared/config"
	"github.com/mullzhang/vulturediff/pkg/shared/errors"
	"github.com/mullzhang/vulturediff/pkg/shared/logger"
)

// RunOptionsDiff holds the arguments for the diff command.
type RunOptionsDiff struct {
	VultureBin            string
	ProdPaths             []string
	TestPaths             []string
	ConfigPath            string
	Exclude               string
	IgnoreNames           string
	IgnoreDecorators      string
	MinConfidence         int
	SortBySize            bool
	VerboseVulture        bool
	MaxItems              int
	JSONOutput            string
	SarifOutput           string
	FailOnTestOnly        bool
	FailOnUnusedWithTests bool
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	diffOptions      RunOptionsDiff
	exampleDiffUsage = `  # Classifying findings for the default src/ and tests/ layout
  vulturediff diff

  # Multiple production roots and a confidence floor
  vulturediff diff --prod-path app --prod-path lib --min-confidence 80

  # Writing machine-readable artifacts next to the console report
  vulturediff diff --json-output reports/deadcode.json --sarif-output reports/deadcode.sarif

  # Failing the pipeline when candidates kept alive only by tests exist
  vulturediff diff --fail-on-test-only`
)

// DiffCmd represents the diff command.
var DiffCmd = &cobra.Command{
	Use:                   "diff [--vulture-bin PATH] [--prod-path PATH]... [--test-path PATH]... [flags]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleDiffUsage,
	Short:                 "Run vulture twice and classify findings by test sensitivity",
	Long: `Runs the vulture scanner over the production paths alone, then over the
production and test paths combined, and reports three partitions: findings that
disappear once tests are included (test-only candidates), findings that remain
(unused even with tests), and findings that appear only in the combined scan.`,
	RunE: runDiffCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runDiffCommand executes the diff command.
func runDiffCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-diff")

	if err := validateDiffArgs(&diffOptions, cmd.Flags(), args); err != nil {
		log.Debug("invalid diff arguments", "error", err)
		return errors.NewCommandError(err, 2)
	}
	applyConfigDefaults(&diffOptions, AppConfig)

	runner := vulture.NewExecRunner(diffOptions.VultureBin, log)
	commonFlags := vulture.Options{
		ConfigPath:       diffOptions.ConfigPath,
		Exclude:          diffOptions.Exclude,
		IgnoreNames:      diffOptions.IgnoreNames,
		IgnoreDecorators: diffOptions.IgnoreDecorators,
		MinConfidence:    diffOptions.MinConfidence,
		SortBySize:       diffOptions.SortBySize,
		Verbose:          diffOptions.VerboseVulture,
	}.CommonFlags()

	outcome, err := classifier.Classify(runner, commonFlags, diffOptions.ProdPaths, diffOptions.TestPaths)
	if err != nil {
		log.Debug("classification failed", "error", err)
		return errors.NewCommandError(err, 2)
	}

	report.WriteConsole(os.Stdout, outcome, diffOptions.MaxItems)

	if diffOptions.JSONOutput != "" {
		if err := report.WriteJSON(diffOptions.JSONOutput, outcome); err != nil {
			log.Debug("failed to write JSON report", "error", err)
			return errors.NewCommandError(err, 2)
		}
		fmt.Println()
		fmt.Printf("JSON report written to: %s\n", diffOptions.JSONOutput)
	}

	if diffOptions.SarifOutput != "" {
		if err := report.WriteSARIF(diffOptions.SarifOutput, outcome); err != nil {
			log.Debug("failed to write SARIF report", "error", err)
			return errors.NewCommandError(err, 2)
		}
		fmt.Println()
		fmt.Printf("SARIF report written to: %s\n", diffOptions.SarifOutput)
	}

	if code := gateExitCode(outcome, &diffOptions); code != 0 {
		log.Debug("ci gate tripped", "exitCode", code)
		return errors.NewCommandError(nil, code)
	}

	log.Debug("diff command completed successfully")
	return nil
}

// gateExitCode maps partition contents and opt-in flags to the CI gate code.
// Without an opt-in flag the command is report-only and always exits clean.
func gateExitCode(outcome *classifier.Outcome, opts *RunOptionsDiff) int {
	if opts.FailOnTestOnly && len(outcome.TestOnly) > 0 {
		return 1
	}
	if opts.FailOnUnusedWithTests && len(outcome.StillUnused) > 0 {
		return 1
	}
	return 0
}

// applyConfigDefaults fills unset options from the app config and built-ins.
func applyConfigDefaults(opts *RunOptionsDiff, cfg *config.Config) {
	if opts.VultureBin == "" {
		opts.VultureBin = cfg.VultureBin()
	}
	if len(opts.ProdPaths) == 0 {
		opts.ProdPaths = cfg.ProdPaths()
	}
	if len(opts.TestPaths) == 0 {
		opts.TestPaths = cfg.TestPaths()
	}
}

// Initialize flags for the diff command.
func init() {
	DiffCmd.Flags().StringVar(&diffOptions.VultureBin, "vulture-bin", "", "Path to the vulture executable. Default: vulture on the search path.")
	DiffCmd.Flags().StringArrayVar(&diffOptions.ProdPaths, "prod-path", nil, "Production path to analyze. Repeatable. Default: src.")
	DiffCmd.Flags().StringArrayVar(&diffOptions.TestPaths, "test-path", nil, "Test path to analyze in the second pass. Repeatable. Default: tests.")
	DiffCmd.Flags().StringVar(&diffOptions.ConfigPath, "config", "", "Vulture config file path (e.g. pyproject.toml).")
	DiffCmd.Flags().StringVar(&diffOptions.Exclude, "exclude", "", "Comma-separated patterns forwarded as --exclude.")
	DiffCmd.Flags().StringVar(&diffOptions.IgnoreNames, "ignore-names", "", "Comma-separated patterns forwarded as --ignore-names.")
	DiffCmd.Flags().StringVar(&diffOptions.IgnoreDecorators, "ignore-decorators", "", "Comma-separated patterns forwarded as --ignore-decorators.")
	DiffCmd.Flags().IntVar(&diffOptions.MinConfidence, "min-confidence", -1, "Value forwarded as --min-confidence.")
	DiffCmd.Flags().BoolVar(&diffOptions.SortBySize, "sort-by-size", false, "Forward --sort-by-size to both runs.")
	DiffCmd.Flags().BoolVar(&diffOptions.VerboseVulture, "verbose-vulture", false, "Forward --verbose to both runs.")
	DiffCmd.Flags().IntVar(&diffOptions.MaxItems, "max-items", 200, "Maximum findings to print per section.")
	DiffCmd.Flags().StringVar(&diffOptions.JSONOutput, "json-output", "", "Optional JSON report output path.")
	DiffCmd.Flags().StringVar(&diffOptions.SarifOutput, "sarif-output", "", "Optional SARIF report output path.")
	DiffCmd.Flags().BoolVar(&diffOptions.FailOnTestOnly, "fail-on-test-only", false, "Exit with 1 when test-only candidates are found.")
	DiffCmd.Flags().BoolVar(&diffOptions.FailOnUnusedWithTests, "fail-on-unused-with-tests", false, "Exit with 1 when findings remain unused even with tests.")
}
