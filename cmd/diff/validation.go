package diff

import (
	"fmt"

	"github.com/spf13/pflag"
)

// validateDiffArgs validates the arguments provided to the diff command.
// Invalid flags are infrastructure failures: the run aborts before any scan.
func validateDiffArgs(opts *RunOptionsDiff, flags *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected positional arguments: %v; paths are given with --prod-path/--test-path", args)
	}

	if opts.MaxItems < 0 {
		return fmt.Errorf("the 'max-items' flag must not be negative")
	}

	if flags.Changed("min-confidence") && (opts.MinConfidence < 0 || opts.MinConfidence > 100) {
		return fmt.Errorf("the 'min-confidence' flag must be between 0 and 100")
	}

	return nil
}
