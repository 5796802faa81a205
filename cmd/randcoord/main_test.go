package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOutput(t *testing.T, out string) datastructure.Coordinate {
	t.Helper()
	idx := strings.Index(out, "Random coordinate: ")
	require.GreaterOrEqual(t, idx, 0, out)
	fields := strings.Split(strings.TrimSpace(out[idx+len("Random coordinate: "):]), ", ")
	require.Len(t, fields, 2, out)
	lat, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	lon, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	return datastructure.NewCoordinate(lat, lon)
}

func TestRunWithFlags(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--coord", "40.7128°, -74.0060°", "--range", "5-15", "--seed", "42"}, strings.NewReader(""), &out)
	require.Equal(t, 0, code, out.String())

	got := parseOutput(t, out.String())
	d := geo.NewWGS84().Distance(datastructure.NewCoordinate(40.7128, -74.0060), got)
	assert.True(t, d >= 5-1e-3 && d <= 15+1e-3, "distance %v", d)
}

func TestRunSeedIsReproducible(t *testing.T) {
	args := []string{"--coord", "-7.5667,110.8167", "--range", "10", "--seed", "7", "--model", "sphere", "--mode", "linear"}
	var a, b bytes.Buffer
	require.Equal(t, 0, run(args, strings.NewReader(""), &a))
	require.Equal(t, 0, run(args, strings.NewReader(""), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRunPrompts(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader("51.5074, -0.1278\n3\n"), &out)
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Enter reference point (Lat, Long): ")
	assert.Contains(t, out.String(), "Enter the distance (km) or range (e.g., '10' or '5-15'): ")

	got := parseOutput(t, out.String())
	d := geo.NewWGS84().Distance(datastructure.NewCoordinate(51.5074, -0.1278), got)
	assert.LessOrEqual(t, d, 3+1e-3)
}

func TestRunFixedDistanceWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--coord", "0,0"}, strings.NewReader("0"), &out)
	require.Equal(t, 0, code, out.String())
	assert.True(t, strings.HasSuffix(out.String(), "Random coordinate: 0.0, 0.0\n"), out.String())
}

func TestRunInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"inverted range", []string{"--coord", "1,1", "--range", "15-5"}, "Invalid input: Minimum distance cannot be greater than maximum distance."},
		{"bad range", []string{"--coord", "1,1", "--range", "abc"}, "Invalid input: Invalid distance format. Please provide a number or a range (e.g., '10' or '5-15')."},
		{"bad coordinate", []string{"--coord", "north", "--range", "5"}, "Invalid input: Invalid coordinate format"},
		{"bad mode", []string{"--coord", "1,1", "--range", "5", "--mode", "radial"}, "Invalid input: unknown sampling mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &out)
			assert.Equal(t, 1, code)
			assert.Contains(t, out.String(), tt.want)
		})
	}

	t.Run("no input on prompt", func(t *testing.T) {
		var out bytes.Buffer
		assert.Equal(t, 1, run(nil, strings.NewReader(""), &out))
		assert.Contains(t, out.String(), "Invalid input: ")
	})
}

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{40, "40.0"},
		{180, "180.0"},
		{-90, "-90.0"},
		{-74.006, "-74.006"},
		{40.712776, "40.712776"},
		{0.00005, "5e-05"},
		{-0.0001, "-0.0001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDegrees(tt.in), "formatDegrees(%v)", tt.in)
	}
}
