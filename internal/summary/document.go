package summary

import "strings"

const (
	titlePrefix             = "# "
	structureHeading        = "## Directory Structure"
	contentsHeading         = "## File Contents"
	contentBlockHeadingMark = "### "
	codeFence               = "```"
)

// Document is the rendered project summary: a structure section followed by a contents section.
type Document struct {
	ProjectName    string
	StructureLines []string
	ContentBlocks  []ContentBlock
}

// NewDocument assembles a document from a walk result.
func NewDocument(projectName string, result Result) Document {
	return Document{
		ProjectName:    projectName,
		StructureLines: result.StructureLines,
		ContentBlocks:  result.ContentBlocks,
	}
}

// String renders the Markdown text.
func (document Document) String() string {
	var builder strings.Builder
	builder.WriteString(titlePrefix + document.ProjectName + "\n\n")
	builder.WriteString(structureHeading + "\n\n")
	for _, line := range document.StructureLines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	builder.WriteString("\n" + contentsHeading + "\n\n")
	for _, block := range document.ContentBlocks {
		builder.WriteString(contentBlockHeadingMark + block.RelativePath + "\n\n")
		builder.WriteString(codeFence + "\n")
		builder.WriteString(block.Text)
		builder.WriteString("\n" + codeFence + "\n\n")
	}
	return builder.String()
}
