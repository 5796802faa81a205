package util_test

import (
	"testing"

	"lintang/randcoord/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 40.712776, util.RoundFloat(40.7127760001, 6))
	assert.Equal(t, -74.0061, util.RoundFloat(-74.00607, 4))
	assert.Equal(t, 1.234568, util.RoundFloat(1.23456789, 6))
	assert.Equal(t, 12.0, util.RoundFloat(12, 6))
}

func TestNormalizeLon(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{540, 180},
		{-540, 180},
		{359.5, -0.5},
		{-74.006, -74.006},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, util.NormalizeLon(tt.in), 1e-9, "NormalizeLon(%v)", tt.in)
	}
}

func TestClampLat(t *testing.T) {
	assert.Equal(t, 90.0, util.ClampLat(90.0000001))
	assert.Equal(t, -90.0, util.ClampLat(-91))
	assert.Equal(t, 45.5, util.ClampLat(45.5))
}
