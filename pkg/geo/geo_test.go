package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointIsValid(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{name: "santiago", point: Point{Lat: -33.4489, Lng: -70.6693}, want: true},
		{name: "null island rejected", point: Point{Lat: 0, Lng: 0}, want: false},
		{name: "lat out of range", point: Point{Lat: 91, Lng: 10}, want: false},
		{name: "lng out of range", point: Point{Lat: 10, Lng: -181}, want: false},
		{name: "equator non-zero lng", point: Point{Lat: 0, Lng: 10}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.IsValid())
		})
	}
}

func TestDistance(t *testing.T) {
	santiago := Point{Lat: -33.4489, Lng: -70.6693}
	providencia := Point{Lat: -33.4314, Lng: -70.6093}

	d := Distance(santiago, providencia)
	// Roughly 5.9 km between the two points.
	assert.InDelta(t, 5.9, d, 0.5)

	assert.Zero(t, Distance(santiago, santiago))
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{km: 0.85, want: "850m"},
		{km: 0.1, want: "100m"},
		{km: 1.2, want: "1.2km"},
		{km: 12.35, want: "12.3km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.km))
	}
}
