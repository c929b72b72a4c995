package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pixelfill/gridgraph"
)

// Sentinel errors for session operations.
var (
	// ErrGridNil is returned when a session is created without a grid.
	ErrGridNil = errors.New("session: grid is nil")
	// ErrUnknownCommand is returned by Dispatch for command types it does not handle.
	ErrUnknownCommand = errors.New("session: unknown command")
)

// Command is a discrete drawing instruction accepted by Session.Dispatch.
type Command interface {
	commandName() string
}

// BeginStroke starts a stroke and paints At.
type BeginStroke struct{ At gridgraph.Coordinate }

// PaintCell paints At if a stroke is active and is ignored otherwise.
type PaintCell struct{ At gridgraph.Coordinate }

// EndStroke finishes the active stroke, if any.
type EndStroke struct{}

// FloodFillAt repaints the region containing At with the selected color.
type FloodFillAt struct{ At gridgraph.Coordinate }

func (BeginStroke) commandName() string { return "begin_stroke" }
func (PaintCell) commandName() string   { return "paint_cell" }
func (EndStroke) commandName() string   { return "end_stroke" }
func (FloodFillAt) commandName() string { return "flood_fill" }

// Option configures a Session.
type Option func(*config)

type config struct {
	logger  *zap.Logger
	onPaint func(cells []gridgraph.Coordinate)
}

func defaultConfig() config {
	return config{
		logger:  zap.NewNop(),
		onPaint: func([]gridgraph.Coordinate) {},
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnPaint registers a hook receiving every batch of cells whose color changed.
func WithOnPaint(fn func(cells []gridgraph.Coordinate)) Option {
	return func(c *config) {
		if fn != nil {
			c.onPaint = fn
		}
	}
}
