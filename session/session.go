package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pixelfill/floodfill"
	"github.com/katalvlaran/pixelfill/gridgraph"
)

// Session is the explicit editing context for one canvas.
type Session[C comparable] struct {
	grid     *gridgraph.Grid[C]
	color    C
	stroking bool

	log     *zap.Logger
	onPaint func([]gridgraph.Coordinate)
}

// New creates a session over grid with color selected.
// The session mutates grid in place; it does not copy it.
func New[C comparable](grid *gridgraph.Grid[C], color C, opts ...Option) (*Session[C], error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session[C]{
		grid:    grid,
		color:   color,
		log:     cfg.logger,
		onPaint: cfg.onPaint,
	}, nil
}

// Grid returns the canvas the session edits.
func (s *Session[C]) Grid() *gridgraph.Grid[C] { return s.grid }

// Color returns the selected color.
func (s *Session[C]) Color() C { return s.color }

// SelectColor changes the color used by subsequent paint and fill commands.
func (s *Session[C]) SelectColor(c C) { s.color = c }

// Stroking reports whether a stroke is in progress.
func (s *Session[C]) Stroking() bool { return s.stroking }

// Dispatch applies cmd to the canvas. Out-of-range coordinates return a wrapped
// gridgraph.ErrIndexOutOfRange and leave both the grid and the stroke state unchanged.
func (s *Session[C]) Dispatch(cmd Command) error {
	var err error
	switch c := cmd.(type) {
	case BeginStroke:
		if err = s.paint(c.At); err == nil {
			s.stroking = true
		}
	case PaintCell:
		if s.stroking {
			err = s.paint(c.At)
		}
	case EndStroke:
		s.stroking = false
	case FloodFillAt:
		err = s.fill(c.At)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	if err != nil {
		s.log.Debug("command rejected", zap.String("command", cmd.commandName()), zap.Error(err))
		return fmt.Errorf("session: %s: %w", cmd.commandName(), err)
	}

	return nil
}

// paint sets a single cell, notifying only when its color changes.
func (s *Session[C]) paint(at gridgraph.Coordinate) error {
	old, err := s.grid.Get(at)
	if err != nil {
		return err
	}
	if old == s.color {
		return nil
	}
	if err = s.grid.Set(at, s.color); err != nil {
		return err
	}
	s.onPaint([]gridgraph.Coordinate{at})

	return nil
}

// fill repaints the region at seed. A region already holding the selected
// color is left alone.
func (s *Session[C]) fill(seed gridgraph.Coordinate) error {
	old, err := s.grid.Get(seed)
	if err != nil {
		return err
	}
	if old == s.color {
		s.log.Debug("flood fill skipped", zap.Stringer("seed", seed))
		return nil
	}
	levels := 0
	r, err := floodfill.Fill(s.grid, seed, floodfill.WithOnLevel(func(level, _ int) { levels = level }))
	if err != nil {
		return err
	}
	if err = floodfill.Apply(s.grid, r, s.color); err != nil {
		return err
	}
	s.log.Debug("flood fill",
		zap.Stringer("seed", seed),
		zap.Int("cells", r.Len()),
		zap.Int("levels", levels))
	s.onPaint(r.Coordinates())

	return nil
}
