package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSize(t *testing.T) {
	tests := []struct {
		level    Level
		lon, lat float64
	}{
		{1, 1, 2.0 / 3.0},
		{2, 1.0 / 8, 1.0 / 12},
		{3, 1.0 / 80, 1.0 / 120},
		{4, 1.0 / 160, 1.0 / 240},
		{5, 1.0 / 320, 1.0 / 480},
		{6, 1.0 / 640, 1.0 / 960},
		{7, 1.0 / 800, 1.0 / 1200},
		{8, 1.0 / 1600, 1.0 / 2400},
		{9, 1.0 / 8000, 1.0 / 12000},
	}

	for _, tt := range tests {
		lon, lat, err := CellSize(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.lon, lon, "level %d lon", tt.level)
		assert.Equal(t, tt.lat, lat, "level %d lat", tt.level)
	}
}

func TestCellSizeUnsupported(t *testing.T) {
	for _, level := range []Level{-1, 0, 10, 99} {
		_, _, err := CellSize(level)
		assert.ErrorIs(t, err, ErrUnsupportedLevel, "level %d", level)

		_, _, err = level.Counts()
		assert.ErrorIs(t, err, ErrUnsupportedLevel, "level %d", level)
	}
}

// Counts are exact: evaluating span/size in floating point yields
// 31199.999999999996 rows at level 7, which truncation would turn into 31199.
func TestCounts(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		cols, rows, err := level.Counts()
		require.NoError(t, err)

		lon, lat, _ := CellSize(level)
		assert.Equal(t, math.Round((MaxLon-MinLon)/lon), float64(cols), "level %d cols", level)
		assert.Equal(t, math.Round((MaxLat-MinLat)/lat), float64(rows), "level %d rows", level)
	}

	cols, rows, _ := Level(7).Counts()
	assert.Equal(t, 25600, cols)
	assert.Equal(t, 31200, rows)

	cols, rows, _ = Level(1).Counts()
	assert.Equal(t, 32, cols)
	assert.Equal(t, 39, rows)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"1", 1},
		{"9", 9},
		{" 3 ", 3},
		{"80km", 1},
		{"10km", 2},
		{"1km", 3},
		{"500m", 4},
		{"250M", 5},
		{"125m", 6},
		{"100m", 7},
		{"50m", 8},
		{"10m", 9},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, in := range []string{"", "0", "10", "-3", "5m", "abc", "1.5"} {
		_, err := ParseLevel(in)
		assert.ErrorIs(t, err, ErrUnsupportedLevel, "input %q", in)
	}
}

func TestLevelAlias(t *testing.T) {
	assert.Equal(t, "500m", Level(4).Alias())
	assert.Equal(t, "", Level(0).Alias())
	assert.Equal(t, "7", Level(7).String())
}

func TestReferenceArea(t *testing.T) {
	b := ReferenceArea()
	assert.Equal(t, 122.0, b.Left())
	assert.Equal(t, 154.0, b.Right())
	assert.Equal(t, 20.0, b.Bottom())
	assert.Equal(t, 46.0, b.Top())
}
