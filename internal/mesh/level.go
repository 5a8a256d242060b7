// Package mesh implements the Japanese Standard Grid Square (JIS X 0410)
// cell geometry, code encoding and grid enumeration.
package mesh

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Reference Area bounds in degrees. Every grid index counts from MinLon/MinLat.
const (
	MinLon = 122.0
	MaxLon = 154.0
	MinLat = 20.0
	MaxLat = 46.0
)

// First-level cells that fit into the Reference Area along each axis.
const (
	firstLevelCols = 32 // (154-122) / 1
	firstLevelRows = 39 // (46-20) / (2/3)
)

// Level selects the cell granularity, 1 (coarsest) to 9 (finest).
type Level int

// Supported level range.
const (
	MinLevel Level = 1
	MaxLevel Level = 9
)

var (
	// ErrUnsupportedLevel is returned for any level outside MinLevel..MaxLevel.
	ErrUnsupportedLevel = errors.New("unsupported mesh level")
	// ErrInvalidCell is returned for negative grid coordinates.
	ErrInvalidCell = errors.New("invalid mesh cell")
)

type levelSpec struct {
	alias string
	lon   float64
	lat   float64
	div   int // cells per first-level cell along each axis
	code  digitFunc
}

var levels = [...]levelSpec{
	1: {alias: "80km", lon: 1.0, lat: 2.0 / 3.0, div: 1, code: firstDigits},
	2: {alias: "10km", lon: 1.0 / 8.0, lat: 1.0 / 12.0, div: 8, code: secondDigits},
	3: {alias: "1km", lon: 1.0 / 80.0, lat: 1.0 / 120.0, div: 80, code: thirdDigits},
	4: {alias: "500m", lon: 1.0 / 160.0, lat: 1.0 / 240.0, div: 160, code: halfDigits},
	5: {alias: "250m", lon: 1.0 / 320.0, lat: 1.0 / 480.0, div: 320, code: quarterDigits},
	6: {alias: "125m", lon: 1.0 / 640.0, lat: 1.0 / 960.0, div: 640, code: eighthDigits},
	7: {alias: "100m", lon: 1.0 / 800.0, lat: 1.0 / 1200.0, div: 800, code: tenthDigits},
	8: {alias: "50m", lon: 1.0 / 1600.0, lat: 1.0 / 2400.0, div: 1600, code: twentiethDigits},
	9: {alias: "10m", lon: 1.0 / 8000.0, lat: 1.0 / 12000.0, div: 8000, code: hundredthDigits},
}

// ParseLevel accepts either a level number ("4") or its common alias ("500m").
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	for i := MinLevel; i <= MaxLevel; i++ {
		if levels[i].alias == s {
			return i, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
	}

	level := Level(n)
	if err := level.Validate(); err != nil {
		return 0, err
	}

	return level, nil
}

// Validate reports ErrUnsupportedLevel for levels outside 1..9.
func (l Level) Validate() error {
	if l < MinLevel || l > MaxLevel {
		return fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(l))
	}
	return nil
}

// Alias returns the conventional cell size name, e.g. "500m" for level 4.
func (l Level) Alias() string {
	if l.Validate() != nil {
		return ""
	}
	return levels[l].alias
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// CellSize returns the cell width and height in degrees.
func CellSize(l Level) (lon, lat float64, err error) {
	if err := l.Validate(); err != nil {
		return 0, 0, err
	}
	return levels[l].lon, levels[l].lat, nil
}

// Counts returns the number of cells covering the Reference Area along each axis.
// It equals floor(span / size) for every level, computed on integers.
func (l Level) Counts() (cols, rows int, err error) {
	if err := l.Validate(); err != nil {
		return 0, 0, err
	}
	return firstLevelCols * levels[l].div, firstLevelRows * levels[l].div, nil
}

// ReferenceArea returns the fixed rectangle all cells are indexed from.
func ReferenceArea() orb.Bound {
	return orb.Bound{
		Min: orb.Point{MinLon, MinLat},
		Max: orb.Point{MaxLon, MaxLat},
	}
}
