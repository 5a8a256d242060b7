package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/woozymasta/jpmesh/internal/config"
	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/logger"
	"github.com/woozymasta/jpmesh/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"        env:"CONFIG_FILE"   description:"Path to batch configuration file"`
	Dir          string `short:"d" long:"dir"           env:"TARGET_DIR"    description:"Directory to write output into"`
	Output       string `short:"o" long:"out"           env:"OUTPUT_FILE"   description:"Output file path, '-' for stdout (default: mesh_<level>.<format>)"`
	Format       string `short:"f" long:"format"        env:"OUTPUT_FORMAT" description:"Output format" choice:"geojsonl" choice:"geojson" choice:"yaml" default:"geojsonl"`
	SkipExisting bool   `short:"s" long:"skip-existing" description:"Skip jobs whose output file already exists"`

	Args struct {
		Level      string `positional-arg-name:"level" description:"Mesh level 1-9 or alias (80km, 10km, 1km, 500m, 250m, 125m, 100m, 50m, 10m)"`
		LeftBottom string `positional-arg-name:"lb_lon,lb_lat" description:"Lower-left corner of the bounding box"`
		RightTop   string `positional-arg-name:"rt_lon,rt_lat" description:"Upper-right corner of the bounding box"`
	} `positional-args:"yes"`
}

func main() {
	// optional .env feeds the env-tagged options below
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = os.Stderr.WriteString("Error loading .env: " + err.Error() + "\n")
		os.Exit(1)
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	jobs, err := buildJobs(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	log.Info().
		Int("jobs", len(jobs)).
		Bool("skip_existing", opts.SkipExisting).
		Msg("Starting mesh generation")

	for _, job := range jobs {
		if _, err := processor.ProcessMesh(job, opts.SkipExisting); err != nil {
			log.Fatal().Err(err).Str("job", job.Label()).Msg("Failed to generate meshes")
		}
	}

	log.Info().Msg("Mesh generation finished successfully")
}

// buildJobs collects jobs from the batch configuration and the positional arguments.
func buildJobs(opts Options) ([]config.Job, error) {
	var jobs []config.Job

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}

		for _, job := range cfg.Jobs {
			if job.Dir == "" {
				job.Dir = opts.Dir
			}
			if job.Format == "" {
				job.Format = opts.Format
			}
			jobs = append(jobs, job)
		}
	}

	if opts.Args.Level != "" {
		job, err := argsJob(opts)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return nil, errors.New("mesh level is required (positional argument or --config)")
	}

	return jobs, nil
}

func argsJob(opts Options) (config.Job, error) {
	job := config.Job{
		Level:  opts.Args.Level,
		Output: opts.Output,
		Format: opts.Format,
		Dir:    opts.Dir,
	}

	lb, rt := opts.Args.LeftBottom, opts.Args.RightTop
	if lb == "" && rt == "" {
		return job, nil
	}
	if lb == "" || rt == "" {
		return job, errors.New("bounding box needs both lb_lon,lb_lat and rt_lon,rt_lat")
	}

	for _, s := range []string{lb, rt} {
		p, err := geo.ParsePoint(s)
		if err != nil {
			return job, err
		}
		job.Extent = append(job.Extent, [2]float64(p))
	}

	return job, nil
}
