package bubbletea

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// headerText lays out the title on the left and the date and clock on the
// right of a single line exactly width cells wide. When both sides do not
// fit, the line is truncated with an ellipsis.
func headerText(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	var line string
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	} else {
		line = runewidth.Truncate(left+"  "+right, width, "…")
	}
	return runewidth.FillRight(line, width)
}
