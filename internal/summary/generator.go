package summary

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/devkit/internal/config"
	"github.com/temirov/devkit/internal/ignore"
	"github.com/temirov/devkit/internal/utils"
)

const (
	errorProjectDirectoryFormat = "project directory %s: %w"
	errorNotDirectoryFormat     = "project path %s is not a directory"
	errorWriteSummaryFormat     = "writing summary %s: %w"
	summaryFilePermissions      = 0o644
)

// Options selects the project and matching behaviour for one summary run.
type Options struct {
	ProjectDirectory string
	Matcher          ignore.Mode
	ExtraPatterns    []string
}

// Report describes a written summary.
type Report struct {
	OutputPath    string
	Document      string
	ListedEntries int
	DumpedFiles   int
	SizeBytes     int64
}

// Generator loads ignore rules, walks the project and writes the summary file.
type Generator struct {
	Logger *zap.Logger
}

// NewGenerator returns a Generator logging to logger.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Logger: logger}
}

// OutputFileName returns the summary file name for a project directory.
func OutputFileName(projectDirectory string) string {
	return filepath.Base(filepath.Clean(projectDirectory)) + utils.SummaryFileSuffix
}

// Generate writes <project>_project_summary.md into the project root, replacing any existing file.
func (generator *Generator) Generate(options Options) (Report, error) {
	projectDirectory, absoluteError := filepath.Abs(options.ProjectDirectory)
	if absoluteError != nil {
		return Report{}, fmt.Errorf(errorProjectDirectoryFormat, options.ProjectDirectory, absoluteError)
	}
	directoryInfo, statError := os.Stat(projectDirectory)
	if statError != nil {
		return Report{}, fmt.Errorf(errorProjectDirectoryFormat, projectDirectory, statError)
	}
	if !directoryInfo.IsDir() {
		return Report{}, fmt.Errorf(errorNotDirectoryFormat, projectDirectory)
	}

	sources, loadError := config.LoadIgnoreSources(projectDirectory, options.ExtraPatterns)
	if loadError != nil {
		return Report{}, loadError
	}
	generator.Logger.Debug("loaded ignore patterns",
		zap.Int("gitignore", len(sources.GitIgnore)),
		zap.Int("summaryignore", len(sources.SummaryIgnore)),
		zap.Int("structureignore", len(sources.StructureIgnore)),
		zap.Int("builtin", len(sources.BuiltIn)),
	)
	rules, rulesError := ignore.NewRuleSet(sources, options.Matcher)
	if rulesError != nil {
		return Report{}, rulesError
	}

	result, walkError := NewWalker(projectDirectory, rules, generator.Logger).Walk()
	if walkError != nil {
		return Report{}, walkError
	}

	rendered := NewDocument(filepath.Base(projectDirectory), result).String()
	outputPath := filepath.Join(projectDirectory, OutputFileName(projectDirectory))
	if writeError := os.WriteFile(outputPath, []byte(rendered), summaryFilePermissions); writeError != nil {
		return Report{}, fmt.Errorf(errorWriteSummaryFormat, outputPath, writeError)
	}

	return Report{
		OutputPath:    outputPath,
		Document:      rendered,
		ListedEntries: len(result.StructureLines),
		DumpedFiles:   len(result.ContentBlocks),
		SizeBytes:     int64(len(rendered)),
	}, nil
}
