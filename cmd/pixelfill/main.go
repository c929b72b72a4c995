// Command pixelfill loads a text canvas, flood fills it from a seed cell and
// prints the result as colored blocks.
//
//	pixelfill -grid board.txt -seed 3,4 -color r
//
// A canvas file holds one rune per cell, one row per line, and must be square.
// Without -grid a 50×50 '.' board with a 5×5 'A' block in the top-left corner is used.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/pixelfill/gridgraph"
	"github.com/katalvlaran/pixelfill/session"
)

func main() {
	var (
		gridFile = flag.String("grid", "", "Path to a square text canvas (default: built-in 50x50 board)")
		seedArg  = flag.String("seed", "0,0", "Seed cell as x,y")
		colorArg = flag.String("color", "r", "Fill color (a single rune)")
		verbose  = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*gridFile, *seedArg, *colorArg, logger); err != nil {
		logger.Error("pixelfill failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(gridFile, seedArg, colorArg string, logger *zap.Logger) error {
	seed, err := parseSeed(seedArg)
	if err != nil {
		return err
	}
	color, size := utf8.DecodeRuneInString(colorArg)
	if size == 0 || size != len(colorArg) {
		return fmt.Errorf("color must be a single rune, got %q", colorArg)
	}

	var g *gridgraph.Grid[rune]
	if gridFile == "" {
		g, err = defaultBoard()
	} else {
		g, err = loadGrid(gridFile)
	}
	if err != nil {
		return err
	}
	logger.Debug("canvas loaded", zap.String("file", gridFile), zap.Int("side", g.Side()))

	painted := 0
	s, err := session.New(g, color,
		session.WithLogger(logger),
		session.WithOnPaint(func(cells []gridgraph.Coordinate) { painted += len(cells) }))
	if err != nil {
		return err
	}
	if err = s.Dispatch(session.FloodFillAt{At: seed}); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("fill %v with %q", seed, color)))
	fmt.Println(render(g))
	fmt.Println(infoStyle.Render(fmt.Sprintf("%d cells repainted", painted)))

	return nil
}

// parseSeed reads "x,y".
func parseSeed(arg string) (gridgraph.Coordinate, error) {
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return gridgraph.Coordinate{}, fmt.Errorf("seed must be x,y, got %q", arg)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("seed x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("seed y: %w", err)
	}

	return gridgraph.Coordinate{X: x, Y: y}, nil
}
