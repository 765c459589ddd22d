package cli

import (
	"errors"
	"os"

	"github.com/losadrian/genviper/internal/branding"
	"github.com/losadrian/genviper/internal/buildinfo"
	"github.com/losadrian/genviper/internal/config"
	"github.com/losadrian/genviper/internal/console"
	"github.com/spf13/cobra"
)

var build = buildinfo.Info{Version: "dev", Commit: "unknown", Date: "unknown"}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " -u <user> -p <project> [-c <copyright>] -m <module> [-ldm] [-rdm]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the source files of a VIPER module (builder, interactor,
presenter, router, view controller, optional local/remote data managers and
their protocols) under a directory named after the module.`,
	// The generator flags are single-dash words (-ldm, -rdm) that pflag
	// cannot express, so the root command hands its raw arguments to the
	// arguments package.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		reporter := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), programName())
		tokens := append([]string{programName()}, args...)
		return runGenerate(reporter, tokens)
	},
}

// reportedError marks an error the command has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.Info{Version: version, Commit: commit, Date: date}

	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		reporter := console.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), programName())
		reporter.Message("Error: "+err.Error(), console.ChannelError)
	}
	return err
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return branding.CLIName()
}
