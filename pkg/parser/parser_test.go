package parser_test

import (
	"errors"
	"testing"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistanceRange(t *testing.T) {
	tests := []struct {
		in      string
		want    datastructure.DistanceRange
		wantErr error
	}{
		{in: "5-15", want: datastructure.DistanceRange{MinKm: 5, MaxKm: 15}},
		{in: "10", want: datastructure.DistanceRange{MinKm: 0, MaxKm: 10}},
		{in: " 2.5 - 7.25 ", want: datastructure.DistanceRange{MinKm: 2.5, MaxKm: 7.25}},
		{in: "8-8", want: datastructure.DistanceRange{MinKm: 8, MaxKm: 8}},
		{in: "15-5", wantErr: domain.ErrInvalidRange},
		{in: "abc", wantErr: domain.ErrInvalidFormat},
		{in: "", wantErr: domain.ErrInvalidFormat},
		{in: "-5", wantErr: domain.ErrInvalidFormat},
		{in: "5-", wantErr: domain.ErrInvalidFormat},
		{in: "1-2-3", wantErr: domain.ErrInvalidFormat},
		{in: "inf", wantErr: domain.ErrInvalidFormat},
		{in: "NaN", wantErr: domain.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parser.ParseDistanceRange(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("format message", func(t *testing.T) {
		_, err := parser.ParseDistanceRange("abc")
		assert.EqualError(t, err, "Invalid distance format. Please provide a number or a range (e.g., '10' or '5-15').")
	})
}

func TestCleanCoordinateInput(t *testing.T) {
	assert.Equal(t, "40.7128,-74.0060", parser.CleanCoordinateInput("40.7128°, -74.0060°"))
	assert.Equal(t, "-7.55,110.8", parser.CleanCoordinateInput(" (-7.55 N ,  110.8 E) "))
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    datastructure.Coordinate
		wantErr error
	}{
		{in: "40.7128°, -74.0060°", want: datastructure.NewCoordinate(40.7128, -74.0060)},
		{in: "40.7128,-74.0060", want: datastructure.NewCoordinate(40.7128, -74.0060)},
		{in: "  -33.8688 , 151.2093 ", want: datastructure.NewCoordinate(-33.8688, 151.2093)},
		{in: "40.7128", wantErr: domain.ErrInvalidFormat},
		{in: "abc,def", wantErr: domain.ErrInvalidFormat},
		{in: "1,2,3", wantErr: domain.ErrInvalidFormat},
		{in: "95,10", wantErr: domain.ErrInvalidFormat},
		{in: "10,190", wantErr: domain.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parser.ParseCoordinate(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
