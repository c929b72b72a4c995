// Package session holds the editing state of one pixel canvas and applies
// drawing commands to it.
//
// A Session owns a gridgraph.Grid, the currently selected color and whether a
// stroke is in progress. Hosts translate their input events into Commands:
//
//	BeginStroke{At}  pointer pressed: start a stroke and paint At
//	PaintCell{At}    pointer moved: paint At while a stroke is active
//	EndStroke{}      pointer released
//	FloodFillAt{At}  fill the same-color region at At with the selected color
//
// Repainted cells are reported through the WithOnPaint hook so the host can
// redraw or persist them. Logging goes through a *zap.Logger supplied with
// WithLogger; the default discards everything.
//
// A Session is not safe for concurrent use.
package session
