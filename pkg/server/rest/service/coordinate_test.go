package service_test

import (
	"context"
	"errors"
	"testing"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/sampler"
	"lintang/randcoord/pkg/server/rest/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/h3-go/v4"
)

func intPtr(v int) *int {
	return &v
}

func TestRandomCoordinate(t *testing.T) {
	center := datastructure.NewCoordinate(40.7128, -74.006)
	okRange := datastructure.DistanceRange{MinKm: 5, MaxKm: 15}

	tests := []struct {
		name      string
		query     service.RandomCoordinateQuery
		wantErr   error
		wantMode  string
		wantModel string
		wantH3    bool
	}{
		{
			name:      "default model",
			query:     service.RandomCoordinateQuery{Center: center, Range: okRange},
			wantMode:  "area",
			wantModel: "ellipsoid",
		},
		{
			name:      "linear sphere with h3",
			query:     service.RandomCoordinateQuery{Center: center, Range: okRange, Mode: sampler.LinearUniform, Model: "sphere", H3Resolution: intPtr(9)},
			wantMode:  "linear",
			wantModel: "sphere",
			wantH3:    true,
		},
		{
			name:      "h3 resolution bounds",
			query:     service.RandomCoordinateQuery{Center: center, Range: okRange, H3Resolution: intPtr(15)},
			wantMode:  "area",
			wantModel: "ellipsoid",
			wantH3:    true,
		},
		{
			name:    "unknown model",
			query:   service.RandomCoordinateQuery{Center: center, Range: okRange, Model: "flat"},
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "unknown mode",
			query:   service.RandomCoordinateQuery{Center: center, Range: okRange, Mode: sampler.Mode(9)},
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "h3 resolution too fine",
			query:   service.RandomCoordinateQuery{Center: center, Range: okRange, H3Resolution: intPtr(16)},
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "negative h3 resolution",
			query:   service.RandomCoordinateQuery{Center: center, Range: okRange, H3Resolution: intPtr(-1)},
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "inverted range",
			query:   service.RandomCoordinateQuery{Center: center, Range: datastructure.DistanceRange{MinKm: 15, MaxKm: 5}},
			wantErr: domain.ErrInvalidRange,
		},
		{
			name:    "center out of bounds",
			query:   service.RandomCoordinateQuery{Center: datastructure.NewCoordinate(95, 0), Range: okRange},
			wantErr: domain.ErrInvalidFormat,
		},
	}

	svc := service.NewCoordinateService(sampler.NewSeededRand(77))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.RandomCoordinate(context.Background(), tt.query)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, service.RandomCoordinateResult{}, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, res.Mode)
			assert.Equal(t, tt.wantModel, res.Model)
			assert.True(t, res.DistanceKm >= 5 && res.DistanceKm <= 15)
			assert.NotEmpty(t, res.Path)
			assert.True(t, res.BackBearingDeg >= 0 && res.BackBearingDeg < 360)

			if !tt.wantH3 {
				assert.Empty(t, res.H3Cell)
				return
			}
			cell := h3.Cell(h3.IndexFromString(res.H3Cell))
			assert.True(t, cell.IsValid())
			assert.Equal(t, *tt.query.H3Resolution, cell.Resolution())
		})
	}
}
