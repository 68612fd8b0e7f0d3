// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/cliargs"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
)

// Execute runs the root command. It returns nil on success and a non-nil
// error for every handled failure; the caller maps that to exit code 1.
// Errors are already rendered to stderr by the time Execute returns, so
// callers must not print them again.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " <command> [arguments] [flags]",
		Short: "PandaDoc document management CLI",
		// The option-bag parser owns the whole command line: unknown
		// options are legal and --key value lookahead must behave the
		// same for every command.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cliargs.Parse(args), version, log)
		},
	}

	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}

// run dispatches one parsed invocation, funneling every failure through
// the top-level error renderer.
func run(ctx context.Context, parsed cliargs.ParsedCommand, version string, log logger.Logger) error {
	// Version wins over help so a bare --version is not swallowed by the
	// empty-command help path.
	if wantsVersion(parsed) {
		log.Printf("%s version %s", posix.GetExecutableName(), version)
		return nil
	}

	if wantsHelp(parsed) {
		log.Printf("%s", usageText())
		return nil
	}

	d := &Dispatcher{
		Log:     log,
		Summary: parsed.Bool("summary"),
		Client: func() (DocumentClient, error) {
			return api.NewClient(api.NewEnvCredentialFetcher(), version)
		},
	}

	if err := d.Dispatch(ctx, parsed); err != nil {
		renderError(logger.NewErrLogger(), err, d.Summary)
		return err
	}
	return nil
}

// wantsHelp reports whether the invocation asks for usage text: no command
// at all, the help command, or a -h/--help flag anywhere.
func wantsHelp(parsed cliargs.ParsedCommand) bool {
	return parsed.Command == "" ||
		parsed.Command == "help" ||
		parsed.Bool("help") ||
		parsed.Bool("h")
}

// wantsVersion reports whether the invocation asks for the version: the
// version command or a --version/-V flag anywhere.
func wantsVersion(parsed cliargs.ParsedCommand) bool {
	return parsed.Command == "version" ||
		parsed.Bool("version") ||
		parsed.Bool("V")
}
