package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pixelfill/gridgraph"
)

const (
	defaultSide = 50
	blockSide   = 5
)

// defaultBoard returns a '.' canvas with an 'A' block in the top-left corner.
func defaultBoard() (*gridgraph.Grid[rune], error) {
	g, err := gridgraph.New(defaultSide, '.')
	if err != nil {
		return nil, err
	}
	for y := 0; y < blockSide; y++ {
		for x := 0; x < blockSide; x++ {
			if err = g.Set(gridgraph.Coordinate{X: x, Y: y}, 'A'); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func loadGrid(path string) (*gridgraph.Grid[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := parseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseGrid reads one row per non-blank line. Every row must have as many
// runes as there are rows.
func parseGrid(r io.Reader) (*gridgraph.Grid[rune], error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	side := len(rows)
	cells := make([]rune, 0, side*side)
	for y, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), side)
		}
		cells = append(cells, row...)
	}

	return gridgraph.FromCells(side, cells)
}
