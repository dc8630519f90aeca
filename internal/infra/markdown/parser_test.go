package markdown

import (
	"testing"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGuide = `# Guide

Some intro text.

## Workflows

` + "```yaml" + `
# Calls .github/scripts/assign.js
on: issues
` + "```" + `

- first item
- second item

| Name | Description |
| ---- | ----------- |
| a    | b           |
`

func TestParser_Parse(t *testing.T) {
	doc, err := New().Parse("docs/workflows.md", []byte(sampleGuide))

	require.NoError(t, err)
	assert.Equal(t, "docs/workflows.md", doc.Path)

	require.Len(t, doc.Headings, 2)
	assert.Equal(t, domain.Heading{Text: "Guide", Line: 1, Level: 1}, doc.Headings[0])
	assert.Equal(t, domain.Heading{Text: "Workflows", Line: 5, Level: 2}, doc.Headings[1])

	require.Len(t, doc.CodeBlocks, 1)
	block := doc.CodeBlocks[0]
	assert.Equal(t, "yaml", block.Language)
	assert.Equal(t, 7, block.Line)
	assert.Equal(t, "# Calls .github/scripts/assign.js\non: issues\n", block.Content)

	assert.Equal(t, []int{12, 13}, doc.ListItems)

	require.Len(t, doc.Tables, 1)
	assert.Equal(t, []string{"Name", "Description"}, doc.Tables[0].Header)
	assert.Equal(t, 15, doc.Tables[0].Line)
	assert.Equal(t, 1, doc.Tables[0].Rows)
}

func TestParser_Parse_FenceWithoutLanguage(t *testing.T) {
	src := "# Title\n\n```\nplain text\n```\n"

	doc, err := New().Parse("doc.md", []byte(src))

	require.NoError(t, err)
	require.Len(t, doc.CodeBlocks, 1)
	assert.Empty(t, doc.CodeBlocks[0].Language)
	assert.Equal(t, 3, doc.CodeBlocks[0].Line)
}

func TestParser_Parse_Empty(t *testing.T) {
	doc, err := New().Parse("empty.md", nil)

	require.NoError(t, err)
	assert.Empty(t, doc.Headings)
	assert.Empty(t, doc.CodeBlocks)
}
