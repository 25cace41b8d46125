package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/devkit/internal/ignore"
	"github.com/temirov/devkit/internal/textdecode"
	"github.com/temirov/devkit/internal/utils"
)

const (
	indentUnit               = "  "
	bulletPrefix             = "- "
	directorySuffix          = "/"
	errorReadDirectoryFormat = "reading directory %s: %w"
	errorAbsolutePathFormat  = "getting absolute path for %s: %w"
)

// DefaultPrunedDirectoryNames are never descended into, before any ignore pattern is consulted.
var DefaultPrunedDirectoryNames = []string{
	utils.GitDirectoryName,
	utils.NodeModulesDirectoryName,
	utils.DistDirectoryName,
}

// TextReader returns the decoded text of the file at path.
type TextReader func(path string) (string, error)

// Walker produces the structure listing and content blocks for one project root.
type Walker struct {
	Root                 string
	Rules                *ignore.RuleSet
	PrunedDirectoryNames []string
	ReadText             TextReader
	Logger               *zap.Logger
}

// NewWalker returns a Walker with the default pruned names and encoding-aware reader.
func NewWalker(root string, rules *ignore.RuleSet, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	walker := &Walker{
		Root:                 root,
		Rules:                rules,
		PrunedDirectoryNames: DefaultPrunedDirectoryNames,
		Logger:               logger,
	}
	walker.ReadText = walker.readDecodedText
	return walker
}

// Walk visits the root, then subdirectories and files in lexicographic order.
// The root itself is always listed.
func (walker *Walker) Walk() (Result, error) {
	absoluteRoot, absoluteError := filepath.Abs(walker.Root)
	if absoluteError != nil {
		return Result{}, fmt.Errorf(errorAbsolutePathFormat, walker.Root, absoluteError)
	}
	rootNode := Node{
		Path:         absoluteRoot,
		RelativePath: ".",
		Name:         filepath.Base(absoluteRoot),
		IsDirectory:  true,
	}
	return walker.visitDirectory(absoluteRoot, rootNode)
}

// visitDirectory returns the lines and blocks contributed by directory and everything below it.
func (walker *Walker) visitDirectory(absoluteRoot string, directory Node) (Result, error) {
	var result Result
	if directory.Depth > 0 && walker.isPruned(directory) {
		return result, nil
	}
	result.StructureLines = append(result.StructureLines, structureLine(directory))

	entries, readError := os.ReadDir(directory.Path)
	if readError != nil {
		if directory.Depth == 0 {
			return Result{}, fmt.Errorf(errorReadDirectoryFormat, directory.Path, readError)
		}
		walker.Logger.Warn("skipping unreadable directory", zap.String("path", directory.Path), zap.Error(readError))
		return result, nil
	}

	var files []Node
	for _, entry := range entries {
		childPath := filepath.Join(directory.Path, entry.Name())
		child := Node{
			Path:         childPath,
			RelativePath: utils.RelativePathOrSelf(childPath, absoluteRoot),
			Name:         entry.Name(),
			Depth:        directory.Depth + 1,
			IsDirectory:  entry.IsDir(),
		}
		if !child.IsDirectory {
			files = append(files, child)
			continue
		}
		childResult, childError := walker.visitDirectory(absoluteRoot, child)
		if childError != nil {
			return Result{}, childError
		}
		result.merge(childResult)
	}

	for _, file := range files {
		result.merge(walker.visitFile(file))
	}
	return result, nil
}

// isPruned reports whether a directory is skipped by name or by the structure rules.
func (walker *Walker) isPruned(directory Node) bool {
	if utils.ContainsString(walker.PrunedDirectoryNames, directory.Name) {
		return true
	}
	return walker.Rules.Matches(directory.RelativePath, true, ignore.VariantStructure)
}

// visitFile lists the file unless structure-ignored and, independently, dumps its text
// unless it is binary, content-ignored, unreadable or blank.
func (walker *Walker) visitFile(file Node) Result {
	var result Result
	if !walker.Rules.Matches(file.RelativePath, false, ignore.VariantStructure) {
		result.StructureLines = append(result.StructureLines, structureLine(file))
	}

	isBinary, sniffError := utils.IsFileBinary(file.Path)
	if sniffError != nil {
		walker.Logger.Warn("skipping unreadable file", zap.String("path", file.RelativePath), zap.Error(sniffError))
		return result
	}
	if isBinary || walker.Rules.Matches(file.RelativePath, false, ignore.VariantContent) {
		return result
	}

	text, readError := walker.ReadText(file.Path)
	if readError != nil {
		walker.Logger.Warn("failed to read file", zap.String("path", file.RelativePath), zap.Error(readError))
		return result
	}
	if strings.TrimSpace(text) == "" {
		return result
	}
	result.ContentBlocks = append(result.ContentBlocks, ContentBlock{RelativePath: file.RelativePath, Text: text})
	return result
}

func (walker *Walker) readDecodedText(path string) (string, error) {
	text, encodingName, readError := textdecode.ReadFile(path)
	if readError != nil {
		return "", readError
	}
	if encodingName != textdecode.EncodingUTF8 {
		walker.Logger.Debug("decoded file with fallback encoding", zap.String("path", path), zap.String("encoding", encodingName))
	}
	return text, nil
}

func structureLine(node Node) string {
	line := strings.Repeat(indentUnit, node.Depth) + bulletPrefix + node.Name
	if node.IsDirectory {
		line += directorySuffix
	}
	return line
}
