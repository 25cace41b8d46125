package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/devkit/internal/icons"
)

const (
	iconExportUse              = "iconexport"
	iconExportShortDescription = "generate application icons from a base image"
	iconExportLongDescription  = `Resize a base image into the Tauri icon set and package icon.icns and icon.ico.
The macOS container is built with iconutil; when the tool is missing or fails the
error is logged and the remaining icons are still written.`
	iconExportUsageExample = `  # Use the default src-tauri/icons/icon.png and src-tauri/icons
  iconexport

  # Read a different base image
  iconexport --input design/logo.png --output build/icons`

	inputFlagName           = "input"
	inputFlagDescription    = "base image path"
	outputFlagName          = "output"
	outputFlagDescription   = "directory receiving the generated icons"
	icnsToolFlagName        = "icns-tool"
	icnsToolFlagDescription = "command that converts an iconset into icon.icns"
)

type iconExportOptions struct {
	common          commonOptions
	inputPath       string
	outputDirectory string
	icnsTool        string
}

// NewIconExportCommand builds the iconexport root command.
func NewIconExportCommand(environment Environment) *cobra.Command {
	environment = environment.withDefaults()
	var options iconExportOptions

	iconExportCommand := &cobra.Command{
		Use:          iconExportUse,
		Short:        iconExportShortDescription,
		Long:         iconExportLongDescription,
		Example:      iconExportUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.common.showVersion {
				printVersion(command)
				return nil
			}
			applyVerbosity(environment, options.common.verbose)
			return runIconExport(command, environment, options)
		},
	}

	addCommonFlags(iconExportCommand, &options.common)
	iconExportCommand.Flags().StringVar(&options.inputPath, inputFlagName, icons.DefaultInputPath, inputFlagDescription)
	iconExportCommand.Flags().StringVar(&options.outputDirectory, outputFlagName, icons.DefaultOutputDirectory, outputFlagDescription)
	iconExportCommand.Flags().StringVar(&options.icnsTool, icnsToolFlagName, icons.DefaultIcnsTool, icnsToolFlagDescription)
	return iconExportCommand
}

func runIconExport(command *cobra.Command, environment Environment, options iconExportOptions) error {
	workingDirectory, workingDirectoryError := resolveWorkingDirectory(environment)
	if workingDirectoryError != nil {
		return workingDirectoryError
	}
	applicationConfiguration, configurationError := loadConfiguration(environment, workingDirectory, options.common.configPath)
	if configurationError != nil {
		return configurationError
	}
	configured := applicationConfiguration.Icons
	flags := command.Flags()

	inputPath := options.inputPath
	if !flags.Changed(inputFlagName) {
		inputPath = firstNonEmpty(configured.Input, options.inputPath)
	}
	outputDirectory := options.outputDirectory
	if !flags.Changed(outputFlagName) {
		outputDirectory = firstNonEmpty(configured.Output, options.outputDirectory)
	}
	icnsTool := options.icnsTool
	if !flags.Changed(icnsToolFlagName) {
		icnsTool = firstNonEmpty(configured.IcnsTool, options.icnsTool)
	}

	packager := environment.Packager
	if packager == nil {
		packager = icons.NewIconutilPackager(icnsTool)
	}
	exporter := icons.NewExporter(environment.Logger, packager, command.OutOrStdout())
	_, exportError := exporter.Export(
		command.Context(),
		resolveAgainst(workingDirectory, inputPath),
		resolveAgainst(workingDirectory, outputDirectory),
	)
	return exportError
}
