package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pixelfill/gridgraph"
	"github.com/katalvlaran/pixelfill/session"
)

func at(x, y int) gridgraph.Coordinate {
	return gridgraph.Coordinate{X: x, Y: y}
}

// newSession returns a session over a side×side white canvas and a log of
// every batch reported through WithOnPaint.
func newSession(t *testing.T, side int, opts ...session.Option) (*session.Session[string], *[][]gridgraph.Coordinate) {
	t.Helper()
	g, err := gridgraph.New(side, "white")
	require.NoError(t, err)

	var painted [][]gridgraph.Coordinate
	opts = append(opts, session.WithOnPaint(func(cells []gridgraph.Coordinate) {
		painted = append(painted, cells)
	}))
	s, err := session.New(g, "black", opts...)
	require.NoError(t, err)

	return s, &painted
}

func color(t *testing.T, s *session.Session[string], c gridgraph.Coordinate) string {
	t.Helper()
	v, err := s.Grid().Get(c)
	require.NoError(t, err)

	return v
}

func TestNew_NilGrid(t *testing.T) {
	s, err := session.New[string](nil, "black")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, session.ErrGridNil)
}

func TestStroke(t *testing.T) {
	s, painted := newSession(t, 4)

	// moving without a held pointer paints nothing
	require.NoError(t, s.Dispatch(session.PaintCell{At: at(0, 0)}))
	assert.Equal(t, "white", color(t, s, at(0, 0)))
	assert.False(t, s.Stroking())

	require.NoError(t, s.Dispatch(session.BeginStroke{At: at(1, 1)}))
	assert.True(t, s.Stroking())
	require.NoError(t, s.Dispatch(session.PaintCell{At: at(2, 1)}))
	require.NoError(t, s.Dispatch(session.PaintCell{At: at(2, 1)})) // already black
	require.NoError(t, s.Dispatch(session.EndStroke{}))
	assert.False(t, s.Stroking())
	require.NoError(t, s.Dispatch(session.PaintCell{At: at(3, 3)}))

	assert.Equal(t, "black", color(t, s, at(1, 1)))
	assert.Equal(t, "black", color(t, s, at(2, 1)))
	assert.Equal(t, "white", color(t, s, at(3, 3)))
	assert.Equal(t, [][]gridgraph.Coordinate{{at(1, 1)}, {at(2, 1)}}, *painted)
}

func TestSelectColor(t *testing.T) {
	s, _ := newSession(t, 2)
	assert.Equal(t, "black", s.Color())
	s.SelectColor("red")
	assert.Equal(t, "red", s.Color())

	require.NoError(t, s.Dispatch(session.BeginStroke{At: at(0, 1)}))
	assert.Equal(t, "red", color(t, s, at(0, 1)))
}

func TestFloodFillAt(t *testing.T) {
	s, painted := newSession(t, 5)
	// vertical wall at x=2
	require.NoError(t, s.Dispatch(session.BeginStroke{At: at(2, 0)}))
	for y := 1; y < 5; y++ {
		require.NoError(t, s.Dispatch(session.PaintCell{At: at(2, y)}))
	}
	require.NoError(t, s.Dispatch(session.EndStroke{}))
	*painted = nil

	s.SelectColor("red")
	require.NoError(t, s.Dispatch(session.FloodFillAt{At: at(0, 0)}))

	require.Len(t, *painted, 1)
	assert.Len(t, (*painted)[0], 10)
	for y := 0; y < 5; y++ {
		assert.Equal(t, "red", color(t, s, at(0, y)))
		assert.Equal(t, "red", color(t, s, at(1, y)))
		assert.Equal(t, "black", color(t, s, at(2, y)))
		assert.Equal(t, "white", color(t, s, at(3, y)))
		assert.Equal(t, "white", color(t, s, at(4, y)))
	}

	// filling a region with its own color changes nothing
	require.NoError(t, s.Dispatch(session.FloodFillAt{At: at(1, 1)}))
	assert.Len(t, *painted, 1)
}

func TestDispatch_OutOfRange(t *testing.T) {
	s, painted := newSession(t, 3)
	before := s.Grid().Cells()

	for _, cmd := range []session.Command{
		session.BeginStroke{At: at(-1, 0)},
		session.FloodFillAt{At: at(3, 0)},
		session.FloodFillAt{At: at(0, -1)},
	} {
		assert.ErrorIs(t, s.Dispatch(cmd), gridgraph.ErrIndexOutOfRange, "%#v", cmd)
	}
	assert.False(t, s.Stroking(), "a rejected BeginStroke must not start a stroke")

	require.NoError(t, s.Dispatch(session.BeginStroke{At: at(0, 0)}))
	assert.ErrorIs(t, s.Dispatch(session.PaintCell{At: at(0, 3)}), gridgraph.ErrIndexOutOfRange)
	assert.True(t, s.Stroking())

	before[0] = "black"
	assert.Equal(t, before, s.Grid().Cells())
	assert.Len(t, *painted, 1)
}

func TestDispatch_Unknown(t *testing.T) {
	s, _ := newSession(t, 2)
	assert.ErrorIs(t, s.Dispatch(nil), session.ErrUnknownCommand)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, _ := newSession(t, 3, session.WithLogger(zap.New(core)))

	require.NoError(t, s.Dispatch(session.FloodFillAt{At: at(1, 1)}))
	require.Error(t, s.Dispatch(session.FloodFillAt{At: at(9, 9)}))
	require.NoError(t, s.Dispatch(session.FloodFillAt{At: at(0, 0)}))

	fills := logs.FilterMessage("flood fill").All()
	require.Len(t, fills, 1)
	fields := fills[0].ContextMap()
	assert.Equal(t, "(1,1)", fields["seed"])
	assert.EqualValues(t, 9, fields["cells"])
	assert.EqualValues(t, 3, fields["levels"])

	rejected := logs.FilterMessage("command rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "flood_fill", rejected[0].ContextMap()["command"])

	assert.Equal(t, 1, logs.FilterMessage("flood fill skipped").Len())
}
