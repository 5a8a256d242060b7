package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrInvalidPoint is returned when a "lon,lat" pair cannot be used.
var ErrInvalidPoint = errors.New("invalid point")

// CellRing returns the closed boundary of b, starting at the lower-left corner
// and going north first:
// (left,bottom) (left,top) (right,top) (right,bottom) (left,bottom).
func CellRing(b orb.Bound) orb.Ring {
	left, bottom := b.Min.Lon(), b.Min.Lat()
	right, top := b.Max.Lon(), b.Max.Lat()

	return orb.Ring{
		{left, bottom},
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}
}

// ParsePoint parses "lon,lat". Both values must be finite and within
// the open interval (-180, 180).
func ParsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("%w: %q: expected lon,lat", ErrInvalidPoint, s)
	}

	var p orb.Point
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Point{}, fmt.Errorf("%w: %q: %v", ErrInvalidPoint, s, err)
		}
		p[i] = v
	}

	if err := ValidatePoint(p); err != nil {
		return orb.Point{}, fmt.Errorf("%q: %w", s, err)
	}

	return p, nil
}

// ValidatePoint requires both values to be finite and within (-180, 180).
func ValidatePoint(p orb.Point) error {
	for _, v := range p {
		if math.IsNaN(v) || v <= -180 || v >= 180 {
			return fmt.Errorf("%w: %v: degrees must be within (-180, 180)", ErrInvalidPoint, p)
		}
	}
	return nil
}
