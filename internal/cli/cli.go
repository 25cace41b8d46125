// Package cli provides the summarize and iconexport command line interfaces.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/devkit/internal/config"
	"github.com/temirov/devkit/internal/icons"
	"github.com/temirov/devkit/internal/services/clipboard"
	"github.com/temirov/devkit/internal/tokenizer"
	"github.com/temirov/devkit/internal/utils"
)

const (
	versionFlagName             = "version"
	versionFlagDescription      = "display application version"
	versionTemplate             = "%s version: %s\n"
	configFlagName              = "config"
	configFlagDescription       = "path to a configuration file (default .devkit.yaml)"
	verboseFlagName             = "verbose"
	verboseFlagDescription      = "enable debug logging"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// CounterFactory builds a token counter for the configured model.
type CounterFactory func(tokenizer.Config) (tokenizer.Counter, string, error)

// Environment carries the process-level collaborators the commands depend on.
// Zero fields fall back to the real implementations.
type Environment struct {
	Logger           *zap.Logger
	LoggerLevel      *zap.AtomicLevel
	WorkingDirectory string
	HomeDirectory    string
	Copier           clipboard.Copier
	NewCounter       CounterFactory
	Packager         icons.Packager
}

func (environment Environment) withDefaults() Environment {
	if environment.Logger == nil {
		environment.Logger = zap.NewNop()
	}
	if environment.Copier == nil {
		environment.Copier = clipboard.NewService()
	}
	if environment.NewCounter == nil {
		environment.NewCounter = tokenizer.NewCounter
	}
	return environment
}

// commonOptions holds the flags every binary accepts.
type commonOptions struct {
	configPath  string
	verbose     bool
	showVersion bool
}

func addCommonFlags(command *cobra.Command, options *commonOptions) {
	command.PersistentFlags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(command.PersistentFlags(), &options.verbose, verboseFlagName, false, verboseFlagDescription)
	registerBooleanFlag(command.Flags(), &options.showVersion, versionFlagName, false, versionFlagDescription)
}

// ExecuteSummarize runs the summarize command with the provided arguments.
func ExecuteSummarize(ctx context.Context, environment Environment, arguments []string) error {
	command := NewSummarizeCommand(environment)
	command.SetArgs(normalizeBooleanFlagArguments(command, arguments))
	return command.ExecuteContext(ctx)
}

// ExecuteIconExport runs the iconexport command with the provided arguments.
func ExecuteIconExport(ctx context.Context, environment Environment, arguments []string) error {
	command := NewIconExportCommand(environment)
	command.SetArgs(normalizeBooleanFlagArguments(command, arguments))
	return command.ExecuteContext(ctx)
}

func printVersion(command *cobra.Command) {
	fmt.Fprintf(command.OutOrStdout(), versionTemplate, command.Root().Name(), utils.GetApplicationVersion())
}

func applyVerbosity(environment Environment, verbose bool) {
	if verbose && environment.LoggerLevel != nil {
		environment.LoggerLevel.SetLevel(zapcore.DebugLevel)
	}
}

func resolveWorkingDirectory(environment Environment) (string, error) {
	if environment.WorkingDirectory != "" {
		return environment.WorkingDirectory, nil
	}
	workingDirectory, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(workingDirectoryErrorFormat, err)
	}
	return workingDirectory, nil
}

func loadConfiguration(environment Environment, workingDirectory string, explicitPath string) (config.ApplicationConfiguration, error) {
	return config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
		HomeDirectory:    environment.HomeDirectory,
	})
}

// resolveAgainst anchors a relative path at base.
func resolveAgainst(base string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
