// Package markdown parses Markdown artifacts into the domain document model.
package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Parser implements domain.DocumentParser.
var _ domain.DocumentParser = (*Parser)(nil)

// Parser extracts headings, fenced code blocks, tables and list items from
// Markdown sources using goldmark with the GFM extension.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Parse builds the document model for the given content.
func (p *Parser) Parse(path string, content []byte) (domain.Document, error) {
	doc := domain.Document{Path: path}

	reader := text.NewReader(content)
	root := p.md.Parser().Parse(reader)
	lines := newLineIndex(content)

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			doc.Headings = append(doc.Headings, domain.Heading{
				Level: node.Level,
				Text:  nodeText(node, content),
				Line:  lines.lineOf(firstSegmentStart(node)),
			})
		case *ast.FencedCodeBlock:
			doc.CodeBlocks = append(doc.CodeBlocks, p.codeBlock(node, content, lines))
		case *extast.Table:
			doc.Tables = append(doc.Tables, tableModel(node, content, lines))
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if start := firstSegmentStart(node); start >= 0 {
				doc.ListItems = append(doc.ListItems, lines.lineOf(start))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return domain.Document{}, err
	}

	sort.Ints(doc.ListItems)
	return doc, nil
}

// codeBlock converts a fenced code block node.
func (p *Parser) codeBlock(node *ast.FencedCodeBlock, content []byte, lines lineIndex) domain.CodeBlock {
	block := domain.CodeBlock{
		Language: string(node.Language(content)),
	}
	if node.Info != nil {
		block.Info = string(node.Info.Segment.Value(content))
		block.Line = lines.lineOf(node.Info.Segment.Start)
	} else if node.Lines().Len() > 0 {
		// No info string: the opening fence sits one line above the body.
		block.Line = lines.lineOf(node.Lines().At(0).Start) - 1
	}

	var sb strings.Builder
	for i := 0; i < node.Lines().Len(); i++ {
		seg := node.Lines().At(i)
		sb.Write(seg.Value(content))
	}
	block.Content = sb.String()
	return block
}

// tableModel converts a GFM table node.
func tableModel(node *extast.Table, content []byte, lines lineIndex) domain.Table {
	table := domain.Table{}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *extast.TableHeader:
			table.Line = lines.lineOf(firstSegmentStart(row))
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				table.Header = append(table.Header, nodeText(cell, content))
			}
		case *extast.TableRow:
			table.Rows++
		}
	}
	return table
}

// nodeText concatenates the text segments under a node.
func nodeText(n ast.Node, content []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(content))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// firstSegmentStart returns the byte offset of the first text segment under
// the node, or -1 when the node has no text.
func firstSegmentStart(n ast.Node) int {
	start := -1
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok && t.Segment.Len() > 0 {
			start = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return start
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

// newLineIndex records the byte offset of every line start.
func newLineIndex(content []byte) lineIndex {
	idx := lineIndex{0}
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// lineOf returns the 1-based line containing the given byte offset.
func (l lineIndex) lineOf(offset int) int {
	if offset < 0 {
		return 0
	}
	lo, hi := 0, len(l)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}
