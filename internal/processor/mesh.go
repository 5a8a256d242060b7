// Package processor turns mesh generation jobs into output files.
package processor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/woozymasta/jpmesh/internal/config"
	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/mesh"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
)

// Stdout is the output name that writes to standard output.
const Stdout = "-"

const (
	writeBufferSize = 256 << 10
	maxPrealloc     = 1 << 16
)

// Result summarizes a processed job.
type Result struct {
	Path    string
	Count   int
	Skipped bool
}

// ProcessMesh enumerates the cells described by the job and writes them out.
// Any write error aborts the job; a partially written file is left in place.
func ProcessMesh(job config.Job, skipExisting bool) (Result, error) {
	level, err := mesh.ParseLevel(job.Level)
	if err != nil {
		return Result{}, err
	}

	extent, err := jobExtent(job)
	if err != nil {
		return Result{}, err
	}

	grid, err := mesh.NewGrid(level, extent)
	if err != nil {
		return Result{}, err
	}

	format := job.Format
	if format == "" {
		format = config.FormatGeoJSONL
	}
	if err := checkFormat(format); err != nil {
		return Result{}, err
	}

	res := Result{Path: OutputPath(job, level, format)}

	if res.Path != Stdout && skipExisting {
		if info, err := os.Stat(res.Path); err == nil && info.Size() > 0 {
			log.Info().
				Str("job", job.Label()).
				Str("path", res.Path).
				Msg("Output file exists, skipping")

			res.Skipped = true
			return res, nil
		}
	}

	log.Info().
		Str("job", job.Label()).
		Int("level", int(level)).
		Str("alias", level.Alias()).
		Int("cells", grid.Len()).
		Str("format", format).
		Str("path", res.Path).
		Msg("Generating meshes")

	start := time.Now()

	if res.Path == Stdout {
		res.Count, err = writeGrid(os.Stdout, grid, format)
	} else {
		res.Count, err = writeFile(res.Path, grid, format)
	}
	if err != nil {
		return res, err
	}

	log.Info().
		Str("job", job.Label()).
		Int("features", res.Count).
		Dur("duration", time.Since(start)).
		Msg("Meshes written")

	return res, nil
}

// OutputPath resolves where a job writes to. Without an explicit output the
// name is mesh_<level>.<format> inside the job directory.
func OutputPath(job config.Job, level mesh.Level, format string) string {
	name := job.Output
	switch {
	case name == Stdout:
		return Stdout
	case name == "":
		name = fmt.Sprintf("mesh_%d.%s", level, format)
	case filepath.IsAbs(name):
		return name
	}

	return filepath.Join(job.Dir, name)
}

func jobExtent(job config.Job) (*orb.Bound, error) {
	if len(job.Extent) == 0 {
		return nil, nil
	}
	if len(job.Extent) != 2 {
		return nil, fmt.Errorf("%w: extent needs two corners, got %d", geo.ErrInvalidPoint, len(job.Extent))
	}

	a, b := orb.Point(job.Extent[0]), orb.Point(job.Extent[1])
	for _, p := range []orb.Point{a, b} {
		if err := geo.ValidatePoint(p); err != nil {
			return nil, err
		}
	}

	box := mesh.NewExtent(a, b)
	return &box, nil
}

func writeFile(path string, grid *mesh.Grid, format string) (count int, err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return writeGrid(f, grid, format)
}

// writeGrid streams every cell of the grid through a buffered feature writer.
func writeGrid(w io.Writer, grid *mesh.Grid, format string) (int, error) {
	bw := bufio.NewWriterSize(w, writeBufferSize)

	capacity := 0
	if format != config.FormatGeoJSONL {
		capacity = min(grid.Len(), maxPrealloc)
	}

	fw, err := newFeatureWriter(bw, format, capacity)
	if err != nil {
		return 0, err
	}

	count := 0
	err = grid.Walk(func(c mesh.Cell) error {
		feature := geo.NewPolygonFeature(map[string]interface{}{"code": c.Code()}, c.Ring())
		if err := fw.Write(feature); err != nil {
			return fmt.Errorf("write %s: %w", c, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	if err := fw.Close(); err != nil {
		return count, err
	}

	return count, bw.Flush()
}
