// Package goldmark renders markdown text to ANSI-styled terminal output
// using goldmark for parsing, chroma for code highlighting and lipgloss for
// styling.
package goldmark

import (
	"strings"

	"github.com/fwojciec/chatbot"
	"github.com/yuin/goldmark/ast"
)

// Render parses markdown source and returns ANSI-styled terminal output.
// GitHub flavored tables, strikethrough, task lists and autolinks are
// supported. Paragraphs and list items are word-wrapped to width. Code
// blocks are rendered at full width without reflow.
func Render(source string, width int, theme chatbot.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// CodeBlocks returns the bodies of fenced and indented code blocks in
// document order, each without its trailing newline.
func CodeBlocks(source string) []string {
	if source == "" {
		return nil
	}
	src := []byte(source)
	var blocks []string
	_ = ast.Walk(parse(src), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			blocks = append(blocks, strings.Join(codeLines(n, src), "\n"))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}
