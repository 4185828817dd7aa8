package goldmark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const gutter = "│"

type ansiRenderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
	strike    lipgloss.Style
	checked   lipgloss.Style
	codeStyle string
}

func newRenderer(theme chatbot.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		accent:    lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
		strike:    lipgloss.NewStyle().Strikethrough(true),
		checked:   lipgloss.NewStyle().Foreground(ansiColor(theme.Success)),
		codeStyle: theme.CodeStyle,
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func parse(source []byte) ast.Node {
	p := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	return p.Parse(text.NewReader(source))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	doc := parse(source)
	var buf bytes.Buffer
	r.walkBlock(doc, source, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func (r *ansiRenderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
	}
}

func (r *ansiRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		inline := r.collectInline(n, source)
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(inline))
		buf.WriteString("\n")

	case *ast.Heading:
		styled := r.accent.Render(r.collectInline(n, source))
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(styled))
		buf.WriteString("\n")

	case *ast.FencedCodeBlock:
		lang := string(n.Language(source))
		if lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.writeCode(buf, codeLines(n, source), lang)

	case *ast.CodeBlock:
		r.writeCode(buf, codeLines(n, source), "")

	case *ast.List:
		r.renderList(n, source, width, buf, 0)

	case *ast.Blockquote:
		var inner bytes.Buffer
		r.walkBlock(n, source, max(width-2, 10), &inner)
		bar := r.muted.Render("▎") + " "
		for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
			buf.WriteString(bar + line + "\n")
		}

	case *extast.Table:
		r.renderTable(n, source, buf)

	case *ast.ThematicBreak:
		buf.WriteString("---\n")

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}
		return

	default:
		r.walkBlock(node, source, width, buf)
		return
	}
	if node.NextSibling() != nil {
		buf.WriteString("\n")
	}
}

// codeLines returns the raw lines of a code block without line terminators.
func codeLines(n ast.Node, source []byte) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		out = append(out, strings.TrimRight(string(line.Value(source)), "\n"))
	}
	return out
}

// writeCode writes code lines behind a gutter, highlighted when lang names a
// known lexer. Lines are never reflowed.
func (r *ansiRenderer) writeCode(buf *bytes.Buffer, lines []string, lang string) {
	prefix := r.muted.Render(gutter) + " "
	var lexer chroma.Lexer
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			lexer = chroma.Coalesce(l)
		}
	}
	for _, line := range lines {
		if lexer != nil {
			line = r.highlight(lexer, line)
		}
		buf.WriteString(prefix + line + "\n")
	}
}

func (r *ansiRenderer) highlight(lexer chroma.Lexer, line string) string {
	style := styles.Get(r.codeStyle)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal16")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var out strings.Builder
	if err := formatter.Format(&out, style, iterator); err != nil {
		return line
	}
	return strings.ReplaceAll(out.String(), "\n", "")
}

func (r *ansiRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	start := node.Start
	itemNum := 0

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		var marker string
		if ordered {
			itemNum++
			marker = fmt.Sprintf("%d. ", start+itemNum-1)
		} else {
			marker = "- "
		}

		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				itemBuf.WriteString(r.collectInline(in, source))
			case *ast.List:
				if itemBuf.Len() > 0 {
					r.writeListItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, width, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			r.writeListItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// writeListItem writes a list item with continuation lines aligned under
// the item text.
func (r *ansiRenderer) writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	itemWidth := max(width-len(prefix), 10)
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// renderTable lays a GFM table out as pipe-separated columns padded to the
// widest cell in each column.
func (r *ansiRenderer) renderTable(n *extast.Table, source []byte, buf *bytes.Buffer) {
	var rows [][]string
	header := -1
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		if _, ok := row.(*extast.TableHeader); ok {
			header = len(rows)
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.collectInline(cell, source))
		}
		rows = append(rows, cells)
	}

	widths := make([]int, len(n.Alignments))
	for _, cells := range rows {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c), 3)
			}
		}
	}

	for ri, cells := range rows {
		buf.WriteString("|")
		for i, w := range widths {
			var c string
			if i < len(cells) {
				c = cells[i]
			}
			if ri == header {
				c = r.bold.Render(c)
			}
			buf.WriteString(" " + align(c, w, n.Alignments[i]) + " |")
		}
		buf.WriteString("\n")
		if ri == header {
			buf.WriteString("|")
			for _, w := range widths {
				buf.WriteString(strings.Repeat("-", w+2) + "|")
			}
			buf.WriteString("\n")
		}
	}
}

func align(s string, width int, a extast.Alignment) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	switch a {
	case extast.AlignRight:
		return strings.Repeat(" ", pad) + s
	case extast.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// collectInline recursively collects styled inline text from a node's children.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *extast.Strikethrough:
		buf.WriteString(r.strike.Render(r.collectInline(n, source)))

	case *extast.TaskCheckBox:
		if n.IsChecked {
			buf.WriteString(r.checked.Render("[x]") + " ")
		} else {
			buf.WriteString("[ ] ")
		}

	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.collectInline(n, source)))

	case *ast.Link:
		inner := r.collectInline(n, source)
		buf.WriteString(r.underline.Render(inner))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	case *ast.Image:
		alt := r.collectInline(n, source)
		buf.WriteString(r.underline.Render(alt))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(source))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}
