package cmd

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mullzhang/vulturediff/cmd/diff"
	"github.com/mullzhang/vulturediff/cmd/version"
	"github.com/mullzhang/vulturediff/pkg/shared/config"
	"github.com/mullzhang/vulturediff/pkg/shared/errors"
)

var (
	appConfigFile string
	AppConfig     *config.Config
	rootCmd       = &cobra.Command{
		Use:                   "vulturediff [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Vulturediff classifies unused-code findings by diffing two vulture passes.",
		Long: `Vulturediff runs the vulture static analyzer twice, over production sources
alone and over production plus test sources, and classifies every reported
unused symbol by whether test inclusion changes its status. The result can
gate a CI pipeline through the exit code.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&appConfigFile, "app-config", "", "Application config file (default is vulturediff.yml).")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(diff.DiffCmd)
}

// Execute runs the root command and maps the outcome to a process exit code:
// 0 clean, 1 CI-gate failure, 2 infrastructure failure.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *errors.CommandError
		if goerrors.As(err, &cmdErr) {
			if cmdErr.CommonError != "" {
				fmt.Fprintf(os.Stderr, "[ERROR] %s\n", cmdErr.CommonError)
			}
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return 2
	}
	return 0
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(appConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] failed to load application config: %v\n", err)
		os.Exit(2)
	}

	diff.Init(AppConfig)
	version.Init(AppConfig)
}
