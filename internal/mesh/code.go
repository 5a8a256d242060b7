package mesh

import (
	"strconv"
)

// digitFunc appends the level specific code digits for grid coordinates x, y.
type digitFunc func(dst []int, x, y int) []int

// quadrant numbers the four sub-cells 1..4, south-west first.
func quadrant(y, x int) int {
	return y*2 + x + 1
}

func firstDigits(dst []int, _, _ int) []int {
	return dst
}

func secondDigits(dst []int, x, y int) []int {
	return append(dst, y%8, x%8)
}

func thirdDigits(dst []int, x, y int) []int {
	return append(dst, y%80/10, x%80/10, y%10, x%10)
}

func halfDigits(dst []int, x, y int) []int {
	return append(dst,
		y%160/20, x%160/20,
		y%20/2, x%20/2,
		quadrant(y%2, x%2),
	)
}

func quarterDigits(dst []int, x, y int) []int {
	return append(dst,
		y%320/40, x%320/40,
		y%40/4, x%40/4,
		quadrant(y%4/2, x%4/2),
		quadrant(y%2, x%2),
	)
}

func eighthDigits(dst []int, x, y int) []int {
	return append(dst,
		y%640/80, x%640/80,
		y%80/8, x%80/8,
		quadrant(y%8/4, x%8/4),
		quadrant(y%4/2, x%4/2),
		quadrant(y%2, x%2),
	)
}

func tenthDigits(dst []int, x, y int) []int {
	return append(dst,
		y%800/100, x%800/100,
		y%100/10, x%100/10,
		y%10, x%10,
	)
}

func twentiethDigits(dst []int, x, y int) []int {
	return append(dst,
		y%1600/200, x%1600/200,
		y%200/20, x%200/20,
		y%20/2, x%20/2,
		y%2, x%2,
	)
}

// hundredthDigits reuses the 50m path for the first six digits and ends with
// raw tenth remainders. Level 9 codes are therefore not extensions of level 8.
func hundredthDigits(dst []int, x, y int) []int {
	return append(dst,
		y%1600/200, x%1600/200,
		y%200/20, x%200/20,
		y%20/2, x%20/2,
		y%10, x%10,
	)
}

// Encode returns the mesh code of cell (x, y) at the given level.
func Encode(level Level, x, y int) (string, error) {
	c, err := NewCell(level, x, y)
	if err != nil {
		return "", err
	}
	return c.Code(), nil
}

// appendCode writes the code of a validated cell to dst.
//
// The first-level prefix is floor(bottom*1.5) followed by the last two digits
// of floor(left). Both are derived from the integer index so first-level
// boundaries never suffer from float drift.
func appendCode(dst []byte, c Cell) []byte {
	spec := levels[c.Level]

	lat := int(MinLat*1.5) + c.Y/spec.div
	lon := strconv.Itoa(int(MinLon) + c.X/spec.div)

	dst = strconv.AppendInt(dst, int64(lat), 10)
	dst = append(dst, lon[1:]...)

	var buf [8]int
	for _, d := range spec.code(buf[:0], c.X, c.Y) {
		dst = strconv.AppendInt(dst, int64(d), 10)
	}

	return dst
}
