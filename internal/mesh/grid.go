package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrInvalidExtent is returned for bounding boxes with non-finite corners.
var ErrInvalidExtent = errors.New("invalid extent")

// Grid is the set of cells of one level covering the Reference Area,
// optionally narrowed to a bounding box.
type Grid struct {
	Level Level
	Cols  int // cells along x over the whole Reference Area
	Rows  int // cells along y over the whole Reference Area
	Start Offset
	End   Offset
}

// NewGrid validates the level and computes the iteration range. A nil extent
// selects the full Reference Area.
func NewGrid(level Level, extent *orb.Bound) (*Grid, error) {
	cols, rows, err := level.Counts()
	if err != nil {
		return nil, err
	}

	g := &Grid{Level: level, Cols: cols, Rows: rows}
	if extent == nil {
		return g, nil
	}

	for _, v := range []float64{extent.Min[0], extent.Min[1], extent.Max[0], extent.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, *extent)
		}
	}

	dx, dy, _ := CellSize(level)
	box := NewExtent(extent.Min, extent.Max)

	if g.Start, err = StartOffset(level, clamp(box.Min, dx, dy)); err != nil {
		return nil, err
	}
	if g.End, err = EndOffset(level, clamp(box.Max, dx, dy)); err != nil {
		return nil, err
	}

	return g, nil
}

// clamp pulls p to within one cell outside the Reference Area. Offsets of a
// point beyond that margin are the same as at the margin, and the offset
// loops stay short for far away coordinates.
func clamp(p orb.Point, dx, dy float64) orb.Point {
	return orb.Point{
		math.Min(math.Max(p.Lon(), MinLon-dx), MaxLon+dx),
		math.Min(math.Max(p.Lat(), MinLat-dy), MaxLat+dy),
	}
}

// XRange returns the half-open column range visited by Walk.
func (g *Grid) XRange() (from, to int) {
	return g.Start.X, g.Cols - g.End.X
}

// YRange returns the half-open row range visited by Walk.
func (g *Grid) YRange() (from, to int) {
	return g.Start.Y, g.Rows - g.End.Y
}

// Len returns the number of cells Walk visits.
func (g *Grid) Len() int {
	x0, x1 := g.XRange()
	y0, y1 := g.YRange()
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return (x1 - x0) * (y1 - y0)
}

// Walk calls fn for every cell in row-major order, south to north and west
// to east. The first error returned by fn stops the walk.
func (g *Grid) Walk(fn func(Cell) error) error {
	x0, x1 := g.XRange()
	y0, y1 := g.YRange()

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if err := fn(Cell{Level: g.Level, X: x, Y: y}); err != nil {
				return err
			}
		}
	}

	return nil
}
