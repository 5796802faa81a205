package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lintang/randcoord/pkg/generator"
	"lintang/randcoord/pkg/geo"
	"lintang/randcoord/pkg/parser"
	"lintang/randcoord/pkg/sampler"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

type options struct {
	coord string
	rng   string
	mode  string
	model string
	seed  uint64
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("randcoord", flag.ContinueOnError)
	fs.SetOutput(stdout)
	opts := options{}
	fs.StringVar(&opts.coord, "coord", "", "Reference point in 'Lat,Long' format (e.g., '40.7128,-74.0060').")
	fs.StringVar(&opts.rng, "range", "", "Distance (km) or range (e.g., '10' or '5-15').")
	fs.StringVar(&opts.mode, "mode", "area", "distance sampling: area (uniform by surface area) or linear (uniform by distance)")
	fs.StringVar(&opts.model, "model", "ellipsoid", "earth model: ellipsoid (WGS84) or sphere")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible run, 0 uses crypto/rand")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := generate(opts, bufio.NewReader(stdin), stdout); err != nil {
		fmt.Fprintf(stdout, "Invalid input: %v\n", err)
		return 1
	}
	return 0
}

func generate(opts options, in *bufio.Reader, out io.Writer) error {
	mode, err := sampler.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	model, err := geo.ParseModel(opts.model, sampler.EarthRadiusKM)
	if err != nil {
		return err
	}

	coordInput := opts.coord
	if coordInput == "" {
		if coordInput, err = prompt(in, out, "Enter reference point (Lat, Long): "); err != nil {
			return err
		}
	}
	center, err := parser.ParseCoordinate(coordInput)
	if err != nil {
		return err
	}

	rangeInput := opts.rng
	if rangeInput == "" {
		if rangeInput, err = prompt(in, out, "Enter the distance (km) or range (e.g., '10' or '5-15'): "); err != nil {
			return err
		}
	}
	distRange, err := parser.ParseDistanceRange(rangeInput)
	if err != nil {
		return err
	}

	genOpts := []generator.Option{
		generator.WithSampler(sampler.NewDistanceSampler(sampler.WithMode(mode))),
		generator.WithProjector(geo.NewProjector(model)),
	}
	if opts.seed != 0 {
		genOpts = append(genOpts, generator.WithSource(sampler.NewSeededRand(opts.seed)))
	}
	g := generator.NewGenerator(genOpts...)

	res, err := g.RandomCoordinate(center, distRange)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Random coordinate: %s, %s\n", formatDegrees(res.Coordinate.Lat), formatDegrees(res.Coordinate.Lon))
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprint(out, msg)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// formatDegrees prints the shortest round-trip form, keeping a ".0" on whole degrees (40.0, not 40).
func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
