package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pixelfill/gridgraph"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	// palette maps common canvas runes to colors; anything else falls back
	// to an ANSI 256 color derived from the rune.
	palette = map[rune]lipgloss.Color{
		'.': lipgloss.Color("#FFFFFF"),
		'#': lipgloss.Color("#000000"),
		'r': lipgloss.Color("#FF6B6B"),
		'g': lipgloss.Color("#98FB98"),
		'b': lipgloss.Color("#87CEEB"),
		'y': lipgloss.Color("#FFD700"),
	}
)

func cellColor(c rune) lipgloss.Color {
	if col, ok := palette[c]; ok {
		return col
	}

	return lipgloss.Color(strconv.Itoa(16 + int(c)%216))
}

// render draws every cell as a two-column block.
func render(g *gridgraph.Grid[rune]) string {
	styles := make(map[rune]lipgloss.Style)
	cells := g.Cells()
	side := g.Side()

	var sb strings.Builder
	for i, c := range cells {
		st, ok := styles[c]
		if !ok {
			st = lipgloss.NewStyle().Background(cellColor(c))
			styles[c] = st
		}
		sb.WriteString(st.Render("  "))
		if (i+1)%side == 0 && i+1 < len(cells) {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
