package mesh

import (
	"github.com/paulmach/orb"
)

// Offset counts whole cells between an edge of the Reference Area and a point.
type Offset struct {
	X, Y int
}

// NewExtent builds a bounding box from two opposite corners in any order.
func NewExtent(a, b orb.Point) orb.Bound {
	return orb.Bound{Min: a, Max: a}.Extend(b)
}

// StartOffset counts the cells lying entirely west and south of p.
// A point exactly on a cell edge belongs to the cell it starts.
func StartOffset(level Level, p orb.Point) (Offset, error) {
	dx, dy, err := CellSize(level)
	if err != nil {
		return Offset{}, err
	}

	var off Offset
	for p.Lon() >= MinLon+dx*float64(off.X+1) {
		off.X++
	}
	for p.Lat() >= MinLat+dy*float64(off.Y+1) {
		off.Y++
	}

	return off, nil
}

// EndOffset counts the cells lying entirely east and north of p, measured
// inward from the Reference Area's upper-right corner.
// A point exactly on a cell edge excludes the cell it starts.
func EndOffset(level Level, p orb.Point) (Offset, error) {
	dx, dy, err := CellSize(level)
	if err != nil {
		return Offset{}, err
	}

	var off Offset
	for p.Lon() <= MaxLon-dx*float64(off.X+1) {
		off.X++
	}
	for p.Lat() <= MaxLat-dy*float64(off.Y+1) {
		off.Y++
	}

	return off, nil
}
