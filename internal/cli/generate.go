package cli

import (
	"errors"

	"github.com/losadrian/genviper/internal/arguments"
	"github.com/losadrian/genviper/internal/config"
	"github.com/losadrian/genviper/internal/console"
	"github.com/losadrian/genviper/internal/scaffold"
)

// runGenerate parses tokens (program name first), generates the module,
// and reports progress through r. Every returned error has already been
// reported.
func runGenerate(r *console.Reporter, tokens []string) error {
	values, err := arguments.Parse(tokens)
	if err != nil {
		return usageError(r, err)
	}

	platform, err := scaffold.ParsePlatform(config.Platform())
	if err != nil {
		return reportError(r, err)
	}

	cfg, err := values.Config(platform)
	if err != nil {
		return usageError(r, err)
	}

	root, err := config.OutputDir()
	if err != nil {
		return reportError(r, err)
	}

	r.Messagef(console.ChannelStandard, "localDataManager: %t", cfg.LocalDataManager)
	r.Messagef(console.ChannelStandard, "remoteDataManager: %t", cfg.RemoteDataManager)

	result, err := scaffold.Generate(cfg, root)
	if err != nil {
		return reportError(r, err)
	}

	r.Messagef(console.ChannelStandard, "Files generated to: %s", result.OutputDir)
	return nil
}

// usageError reports a bad command line followed by the usage text. Too few
// arguments gets the usage text alone.
func usageError(r *console.Reporter, err error) error {
	if !errors.Is(err, arguments.ErrInsufficientArguments) {
		r.Message(err.Error(), console.ChannelError)
	}
	r.Usage()
	return &reportedError{err: err}
}

func reportError(r *console.Reporter, err error) error {
	r.Message(err.Error(), console.ChannelError)
	return &reportedError{err: err}
}
