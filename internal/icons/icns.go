package icons

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultIcnsTool is the macOS command that assembles an iconset into an .icns file.
	DefaultIcnsTool        = "iconutil"
	// DefaultPackagerTimeout bounds a single packager run.
	DefaultPackagerTimeout = 2 * time.Minute

	packagerWaitDelay        = time.Second
	iconsetDirectoryName     = "icon.iconset"
	iconsetTemporaryPattern  = "iconexport-*"
	errorToolNotFoundFormat  = "%w: %s not found on PATH: %w"
	errorIconsetFormat       = "preparing iconset: %w"
	errorPackagerRunFormat   = "%s: %w\n%s"
	errorPackagerTimeout     = "%s did not finish within %s: %w"
	iconsetEntryFormat       = "icon_%dx%d.png"
	iconsetRetinaEntryFormat = "icon_%dx%d@2x.png"
)

// ErrPackagerUnavailable reports that the external packaging tool could not be found.
var ErrPackagerUnavailable = errors.New("icon packager unavailable")

// iconsetPointSizes are the point sizes an iconset may describe.
var iconsetPointSizes = []int{16, 32, 128, 256, 512}

// Packager assembles frames into a platform icon container at outputPath.
type Packager interface {
	Package(ctx context.Context, frames []Frame, outputPath string) error
}

// IconutilPackager writes an iconset into a temporary directory and runs iconutil on it.
// A run longer than Timeout is killed; a zero Timeout selects DefaultPackagerTimeout.
type IconutilPackager struct {
	ToolName string
	Timeout  time.Duration
}

// NewIconutilPackager returns a packager running toolName, or iconutil when empty.
func NewIconutilPackager(toolName string) *IconutilPackager {
	if strings.TrimSpace(toolName) == "" {
		toolName = DefaultIcnsTool
	}
	return &IconutilPackager{ToolName: toolName, Timeout: DefaultPackagerTimeout}
}

// Package implements Packager.
func (packager *IconutilPackager) Package(ctx context.Context, frames []Frame, outputPath string) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if _, lookError := exec.LookPath(packager.ToolName); lookError != nil {
		return fmt.Errorf(errorToolNotFoundFormat, ErrPackagerUnavailable, packager.ToolName, lookError)
	}

	temporaryDirectory, tempError := os.MkdirTemp("", iconsetTemporaryPattern)
	if tempError != nil {
		return fmt.Errorf(errorIconsetFormat, tempError)
	}
	defer os.RemoveAll(temporaryDirectory)

	iconsetDirectory := filepath.Join(temporaryDirectory, iconsetDirectoryName)
	if writeError := WriteIconset(iconsetDirectory, frames); writeError != nil {
		return fmt.Errorf(errorIconsetFormat, writeError)
	}

	timeout := packager.Timeout
	if timeout <= 0 {
		timeout = DefaultPackagerTimeout
	}
	runContext, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	command := exec.CommandContext(runContext, packager.ToolName, "-c", "icns", iconsetDirectory, "-o", outputPath)
	command.WaitDelay = packagerWaitDelay
	output, runError := command.CombinedOutput()
	if runError == nil {
		return nil
	}
	if errors.Is(runContext.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf(errorPackagerTimeout, packager.ToolName, timeout, context.DeadlineExceeded)
	}
	return fmt.Errorf(errorPackagerRunFormat, packager.ToolName, runError, output)
}

// WriteIconset creates directory and fills it with the iconset entries each frame provides.
// A frame can serve as the 1x image of its own point size and as the 2x image of half of it.
func WriteIconset(directory string, frames []Frame) error {
	if makeError := os.MkdirAll(directory, 0o755); makeError != nil {
		return makeError
	}
	for _, frame := range frames {
		for _, entryName := range IconsetEntryNames(frame.Size) {
			if saveError := SavePNG(frame.Image, filepath.Join(directory, entryName)); saveError != nil {
				return saveError
			}
		}
	}
	return nil
}

// IconsetEntryNames returns the iconset file names a frame of the given pixel size fills.
func IconsetEntryNames(size int) []string {
	var names []string
	for _, pointSize := range iconsetPointSizes {
		if pointSize == size {
			names = append(names, fmt.Sprintf(iconsetEntryFormat, pointSize, pointSize))
		}
		if pointSize*2 == size {
			names = append(names, fmt.Sprintf(iconsetRetinaEntryFormat, pointSize, pointSize))
		}
	}
	return names
}
