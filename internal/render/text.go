package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridcrawl/pkg/grid"
)

// Glyphs used by Text.
const (
	EmptyGlyph   = '.'
	FlaggedGlyph = '#'
)

var cellStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("107")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("139")),
}

var flagStyles = []lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
}

// Text renders g one line per row. Cells print their value as a base-36
// digit, empty cells print EmptyGlyph, and cells listed in flagged print
// FlaggedGlyph in the style of their flag's position in order. Earlier flags
// in order win.
func Text(g *grid.Grid[uint8], order []int, flagged map[int][]*grid.Cell[uint8]) string {
	marks := make(map[*grid.Cell[uint8]]int)
	for i := len(order) - 1; i >= 0; i-- {
		for _, c := range flagged[order[i]] {
			marks[c] = i
		}
	}

	var b strings.Builder
	for i, c := range g.All() {
		if i > 0 && i%g.Width() == 0 {
			b.WriteByte('\n')
		}
		if slot, ok := marks[c]; ok {
			b.WriteString(flagStyles[slot%len(flagStyles)].Render(string(FlaggedGlyph)))
			continue
		}
		v, ok := c.Get()
		if !ok {
			b.WriteString(cellStyles[0].Render(string(EmptyGlyph)))
			continue
		}
		style := cellStyles[min(int(v), len(cellStyles)-1)]
		b.WriteString(style.Render(strconv.FormatInt(int64(v%36), 36)))
	}
	b.WriteByte('\n')
	return b.String()
}
