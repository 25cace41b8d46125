package icons

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	generatedLineFormat         = "Generated: %s\n"
	errorCreateOutputFormat     = "creating output directory %s: %w"
	errorCreateIcoFormat        = "creating %s: %w"
	outputDirectoryPermissions  = 0o755
	icnsFailureLogMessage       = "could not generate icns file"
	exportCompletedDebugMessage = "icon export completed"
)

// Report lists the artifacts an export wrote and any recovered packaging failure.
type Report struct {
	Written     []string
	PackagerErr error
}

// Exporter writes the raster icon set and both icon containers.
type Exporter struct {
	Logger   *zap.Logger
	Packager Packager
	Out      io.Writer
}

// NewExporter returns an Exporter printing artifact lines to out.
// A nil packager selects iconutil; a nil logger discards log output.
func NewExporter(logger *zap.Logger, packager Packager, out io.Writer) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if packager == nil {
		packager = NewIconutilPackager(DefaultIcnsTool)
	}
	if out == nil {
		out = io.Discard
	}
	return &Exporter{Logger: logger, Packager: packager, Out: out}
}

// Export reads inputPath and writes every artifact into outputDirectory.
// A packaging failure is logged and recorded in the report; every other failure is returned.
func (exporter *Exporter) Export(ctx context.Context, inputPath string, outputDirectory string) (Report, error) {
	var report Report
	if makeError := os.MkdirAll(outputDirectory, outputDirectoryPermissions); makeError != nil {
		return report, fmt.Errorf(errorCreateOutputFormat, outputDirectory, makeError)
	}
	baseImage, loadError := LoadImage(inputPath)
	if loadError != nil {
		return report, loadError
	}

	for _, spec := range OutputSpecs {
		outputPath := filepath.Join(outputDirectory, spec.FileName)
		if saveError := SavePNG(Resize(baseImage, spec.Size), outputPath); saveError != nil {
			return report, saveError
		}
		exporter.recordArtifact(&report, outputPath)
	}

	icnsPath := filepath.Join(outputDirectory, IcnsFileName)
	if packageError := exporter.Packager.Package(ctx, Frames(baseImage, IcnsSizes), icnsPath); packageError != nil {
		report.PackagerErr = packageError
		exporter.Logger.Error(icnsFailureLogMessage, zap.String("path", icnsPath), zap.Error(packageError))
	} else {
		exporter.recordArtifact(&report, icnsPath)
	}

	icoPath := filepath.Join(outputDirectory, IcoFileName)
	if icoError := writeIcoFile(icoPath, Frames(baseImage, IcoSizes)); icoError != nil {
		return report, icoError
	}
	exporter.recordArtifact(&report, icoPath)

	exporter.Logger.Debug(exportCompletedDebugMessage, zap.Int("artifacts", len(report.Written)))
	return report, nil
}

func (exporter *Exporter) recordArtifact(report *Report, path string) {
	report.Written = append(report.Written, path)
	fmt.Fprintf(exporter.Out, generatedLineFormat, filepath.Base(path))
}

func writeIcoFile(path string, frames []Frame) (err error) {
	fileHandle, createError := os.Create(path)
	if createError != nil {
		return fmt.Errorf(errorCreateIcoFormat, path, createError)
	}
	defer func() {
		if closeError := fileHandle.Close(); err == nil && closeError != nil {
			err = fmt.Errorf(errorCreateIcoFormat, path, closeError)
		}
	}()
	if writeError := WriteICO(fileHandle, frames); writeError != nil {
		return fmt.Errorf(errorCreateIcoFormat, path, writeError)
	}
	return nil
}
