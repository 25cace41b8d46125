// Package summary walks a project directory and renders the Markdown project summary.
package summary

// Node is a directory or file visited during the walk.
type Node struct {
	// Path is the filesystem path of the entry.
	Path string
	// RelativePath is the path below the project root using forward slashes.
	RelativePath string
	Name         string
	Depth        int
	IsDirectory  bool
}

// ContentBlock is one file body destined for the contents section.
type ContentBlock struct {
	RelativePath string
	Text         string
}

// Result carries the two sections produced by a walk.
type Result struct {
	StructureLines []string
	ContentBlocks  []ContentBlock
}

func (result *Result) merge(other Result) {
	result.StructureLines = append(result.StructureLines, other.StructureLines...)
	result.ContentBlocks = append(result.ContentBlocks, other.ContentBlocks...)
}
