package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/devkit/internal/config"
	"github.com/temirov/devkit/internal/ignore"
	"github.com/temirov/devkit/internal/prompt"
	"github.com/temirov/devkit/internal/summary"
	"github.com/temirov/devkit/internal/tokenizer"
	"github.com/temirov/devkit/internal/utils"
)

const (
	summarizeUse              = "summarize [project-directory]"
	summarizeShortDescription = "write a Markdown summary of a project directory"
	summarizeLongDescription  = `Walk a project directory and write <project>_project_summary.md into its root.
The summary lists the directory structure and the text of every non-binary file.
.gitignore patterns apply to both sections, .summarystructureignore only to the structure
and .summaryignore only to the file contents. Without a directory argument the command
prompts for one; a blank answer selects the current directory.`
	summarizeUsageExample = `  # Summarize the current directory without prompting
  summarize .

  # Use full gitignore semantics and copy the result
  summarize --matcher gitignore --copy ./service

  # Exclude lock files and report a token estimate
  summarize -e '*.lock' --tokens .`

	matcherFlagName          = "matcher"
	matcherFlagDescription   = "pattern matcher: compat or gitignore"
	exclusionFlagName        = "e"
	exclusionFlagDescription = "additional exclusion pattern (repeatable)"
	copyFlagName             = "copy"
	copyFlagDescription      = "copy the summary to the clipboard"
	tokensFlagName           = "tokens"
	tokensFlagDescription    = "log a token estimate for the summary"
	modelFlagName            = "model"
	modelFlagDescription     = "tokenizer model used for the estimate"
	summaryWrittenFormat     = "Summary written to %s\n"

	initUse                 = "init"
	initShortDescription    = "write a default configuration file"
	globalFlagName          = "global"
	globalFlagDescription   = "write ~/.devkit/config.yaml instead of .devkit.yaml"
	forceFlagName           = "force"
	forceFlagDescription    = "overwrite an existing configuration file"
	configurationWrittenFmt = "Configuration written to %s\n"
)

type summarizeOptions struct {
	common            commonOptions
	matcher           string
	exclusionPatterns []string
	copyToClipboard   bool
	countTokens       bool
	model             string
}

// summarizeSettings is the merged result of flags and configuration.
type summarizeSettings struct {
	mode              ignore.Mode
	exclusionPatterns []string
	copyToClipboard   bool
	countTokens       bool
	model             string
}

// NewSummarizeCommand builds the summarize root command and its init subcommand.
func NewSummarizeCommand(environment Environment) *cobra.Command {
	environment = environment.withDefaults()
	var options summarizeOptions

	summarizeCommand := &cobra.Command{
		Use:          summarizeUse,
		Short:        summarizeShortDescription,
		Long:         summarizeLongDescription,
		Example:      summarizeUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.common.showVersion {
				printVersion(command)
				return nil
			}
			applyVerbosity(environment, options.common.verbose)
			return runSummarize(command, environment, options, arguments)
		},
	}

	addCommonFlags(summarizeCommand, &options.common)
	summarizeCommand.Flags().StringVar(&options.matcher, matcherFlagName, string(ignore.ModeCompat), matcherFlagDescription)
	summarizeCommand.Flags().StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	registerBooleanFlag(summarizeCommand.Flags(), &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	registerBooleanFlag(summarizeCommand.Flags(), &options.countTokens, tokensFlagName, false, tokensFlagDescription)
	summarizeCommand.Flags().StringVar(&options.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	summarizeCommand.AddCommand(createInitCommand(environment))
	return summarizeCommand
}

func runSummarize(command *cobra.Command, environment Environment, options summarizeOptions, arguments []string) error {
	workingDirectory, workingDirectoryError := resolveWorkingDirectory(environment)
	if workingDirectoryError != nil {
		return workingDirectoryError
	}
	applicationConfiguration, configurationError := loadConfiguration(environment, workingDirectory, options.common.configPath)
	if configurationError != nil {
		return configurationError
	}
	settings, settingsError := resolveSummarizeSettings(command, options, applicationConfiguration.Summary)
	if settingsError != nil {
		return settingsError
	}

	projectDirectory := workingDirectory
	if len(arguments) == 1 {
		projectDirectory = arguments[0]
	} else {
		answer, promptError := prompt.New(command.InOrStdin(), command.OutOrStdout()).ProjectDirectory(workingDirectory)
		if promptError != nil {
			return promptError
		}
		projectDirectory = answer
	}

	logger := environment.Logger
	report, generateError := summary.NewGenerator(logger).Generate(summary.Options{
		ProjectDirectory: resolveAgainst(workingDirectory, projectDirectory),
		Matcher:          settings.mode,
		ExtraPatterns:    settings.exclusionPatterns,
	})
	if generateError != nil {
		return generateError
	}
	fmt.Fprintf(command.OutOrStdout(), summaryWrittenFormat, report.OutputPath)
	logger.Info("project summary written",
		zap.String("path", report.OutputPath),
		zap.Int("entries", report.ListedEntries),
		zap.Int("files", report.DumpedFiles),
		zap.String("size", utils.FormatFileSize(report.SizeBytes)),
	)

	if settings.countTokens {
		logTokenEstimate(environment, settings.model, report.Document)
	}
	if settings.copyToClipboard {
		if copyError := environment.Copier.Copy(report.Document); copyError != nil {
			logger.Warn("failed to copy summary", zap.Error(copyError))
		} else {
			logger.Info("summary copied to clipboard")
		}
	}
	return nil
}

// resolveSummarizeSettings prefers explicitly set flags, then configuration, then flag defaults.
func resolveSummarizeSettings(command *cobra.Command, options summarizeOptions, configuration config.SummaryConfiguration) (summarizeSettings, error) {
	flags := command.Flags()
	matcher := options.matcher
	if !flags.Changed(matcherFlagName) && configuration.Matcher != "" {
		matcher = configuration.Matcher
	}
	mode, modeError := ignore.ParseMode(matcher)
	if modeError != nil {
		return summarizeSettings{}, modeError
	}

	settings := summarizeSettings{
		mode:              mode,
		exclusionPatterns: utils.DeduplicatePatterns(append(append([]string{}, configuration.Exclude...), options.exclusionPatterns...)),
		copyToClipboard:   options.copyToClipboard,
		countTokens:       options.countTokens,
		model:             options.model,
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		settings.copyToClipboard = *configuration.Clipboard
	}
	if !flags.Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		settings.countTokens = *configuration.Tokens.Enabled
	}
	if !flags.Changed(modelFlagName) {
		settings.model = firstNonEmpty(configuration.Tokens.Model, options.model)
	}
	return settings, nil
}

func logTokenEstimate(environment Environment, model string, document string) {
	logger := environment.Logger
	counter, resolvedModel, counterError := environment.NewCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		logger.Warn("failed to initialize tokenizer", zap.String("model", model), zap.Error(counterError))
		return
	}
	result, countError := tokenizer.CountBytes(counter, []byte(document))
	if countError != nil {
		logger.Warn("failed to count tokens", zap.String("model", resolvedModel), zap.Error(countError))
		return
	}
	if !result.Counted {
		logger.Warn("summary is not valid UTF-8 text; tokens not counted")
		return
	}
	logger.Info("token estimate", zap.String("model", resolvedModel), zap.Int("tokens", result.Tokens))
}

func createInitCommand(environment Environment) *cobra.Command {
	var writeGlobal bool
	var force bool

	initCommand := &cobra.Command{
		Use:          initUse,
		Short:        initShortDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := resolveWorkingDirectory(environment)
			if workingDirectoryError != nil {
				return workingDirectoryError
			}
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
				HomeDirectory:    environment.HomeDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), configurationWrittenFmt, writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &writeGlobal, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
