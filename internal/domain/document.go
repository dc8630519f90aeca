package domain

import "strings"

// Document is the parsed form of a Markdown artifact (guide or changelog).
// Fields are ordered to minimize memory padding.
type Document struct {
	Path       string
	Headings   []Heading
	CodeBlocks []CodeBlock
	Tables     []Table
	ListItems  []int // 1-based lines of top-level list items
}

// Heading is a Markdown heading.
type Heading struct {
	Text  string
	Line  int // 1-based line of the heading marker
	Level int // 1-6
}

// CodeBlock is a fenced code block.
// Fields are ordered to minimize memory padding.
type CodeBlock struct {
	Language string // Language tag from the info string ("" if absent)
	Info     string // Full info string
	Content  string // Block body without the fences
	Line     int    // 1-based line of the opening fence
}

// Table is a GFM table.
type Table struct {
	Header []string
	Line   int // 1-based line of the header row
	Rows   int // Body row count
}

// Lines splits the block content into lines without a trailing empty line.
func (b CodeBlock) Lines() []string {
	content := strings.TrimRight(b.Content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// IsWorkflowExample reports whether the block looks like a GitHub Actions
// workflow: a YAML fence declaring both triggers and jobs.
func (b CodeBlock) IsWorkflowExample() bool {
	if b.Language != "yaml" && b.Language != "yml" {
		return false
	}
	hasOn := false
	hasJobs := false
	for _, line := range b.Lines() {
		switch {
		case strings.HasPrefix(line, "on:"), strings.HasPrefix(line, `"on":`):
			hasOn = true
		case strings.HasPrefix(line, "jobs:"):
			hasJobs = true
		}
	}
	return hasOn && hasJobs
}

// IsScriptExample reports whether the block is a bash or javascript example.
func (b CodeBlock) IsScriptExample() bool {
	switch b.Language {
	case "bash", "sh", "shell", "javascript", "js":
		return true
	}
	return false
}
