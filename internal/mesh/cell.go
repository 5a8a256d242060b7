package mesh

import (
	"fmt"

	"github.com/woozymasta/jpmesh/internal/geo"

	"github.com/paulmach/orb"
)

// Cell is one grid rectangle, x counting east and y counting north from the
// Reference Area's lower-left corner in units of the level's cell size.
type Cell struct {
	Level Level
	X, Y  int
}

// NewCell validates the level and coordinates.
func NewCell(level Level, x, y int) (Cell, error) {
	c := Cell{Level: level, X: x, Y: y}
	if err := c.Validate(); err != nil {
		return Cell{}, err
	}
	return c, nil
}

// Validate reports ErrUnsupportedLevel or ErrInvalidCell.
func (c Cell) Validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	if c.X < 0 || c.Y < 0 {
		return fmt.Errorf("%w: negative coordinates (%d, %d)", ErrInvalidCell, c.X, c.Y)
	}
	return nil
}

// Code returns the hierarchical mesh code, or "" for an invalid cell.
func (c Cell) Code() string {
	return string(c.AppendCode(make([]byte, 0, 16)))
}

// AppendCode appends the mesh code to dst. Invalid cells append nothing.
func (c Cell) AppendCode(dst []byte) []byte {
	if c.Validate() != nil {
		return dst
	}
	return appendCode(dst, c)
}

// Bound returns the geographic extent of the cell, empty for an invalid cell.
func (c Cell) Bound() orb.Bound {
	if c.Validate() != nil {
		return orb.Bound{}
	}

	spec := levels[c.Level]
	return orb.Bound{
		Min: orb.Point{MinLon + spec.lon*float64(c.X), MinLat + spec.lat*float64(c.Y)},
		Max: orb.Point{MinLon + spec.lon*float64(c.X+1), MinLat + spec.lat*float64(c.Y+1)},
	}
}

// Ring returns the closed 5 point boundary of the cell.
func (c Cell) Ring() orb.Ring {
	return geo.CellRing(c.Bound())
}

// Polygon returns the cell boundary as a single ring polygon.
func (c Cell) Polygon() orb.Polygon {
	return orb.Polygon{c.Ring()}
}

func (c Cell) String() string {
	return fmt.Sprintf("L%d(%d,%d)", c.Level, c.X, c.Y)
}

// Geometry returns the closed ring of cell (x, y) at the given level.
func Geometry(level Level, x, y int) (orb.Ring, error) {
	c, err := NewCell(level, x, y)
	if err != nil {
		return nil, err
	}
	return c.Ring(), nil
}
