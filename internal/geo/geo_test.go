package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	d := Distance(-23.5670, -46.5997, -23.5670, -46.5997)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	there := Distance(-23.5670, -46.5997, -23.9630, -46.3360)
	back := Distance(-23.9630, -46.3360, -23.5670, -46.5997)
	assert.InDelta(t, there, back, 1e-9)
}

func TestDistance_KnownPair(t *testing.T) {
	// Mooca ↔ Santos, na casa dos 50 km.
	d := Distance(-23.5670, -46.5997, -23.9630, -46.3360)
	assert.Greater(t, d, 40.0)
	assert.Less(t, d, 60.0)
}

func TestFindNearest(t *testing.T) {
	stores := FallbackStores()

	tests := []struct {
		name     string
		lat, lon float64
		wantID   uint
	}{
		{"em cima da Mooca", -23.5670, -46.5997, 1},
		{"perto do Tatuapé", -23.5430, -46.5600, 2},
		{"litoral fica com Santos", -23.9500, -46.3400, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearest, dist, ok := FindNearest(stores, tt.lat, tt.lon)

			assert.True(t, ok)
			assert.Equal(t, tt.wantID, nearest.ID)

			for _, s := range stores {
				assert.LessOrEqual(t, dist, Distance(tt.lat, tt.lon, s.Lat, s.Lon))
			}
		})
	}
}

func TestFindNearest_TieKeepsFirst(t *testing.T) {
	twin := []StorePoint{
		{ID: 10, Name: "A", Lat: -23.5, Lon: -46.6},
		{ID: 20, Name: "B", Lat: -23.5, Lon: -46.6},
	}

	nearest, _, ok := FindNearest(twin, -23.4, -46.6)

	assert.True(t, ok)
	assert.Equal(t, uint(10), nearest.ID)
}

func TestFindNearest_EmptyList(t *testing.T) {
	_, _, ok := FindNearest(nil, -23.5, -46.6)
	assert.False(t, ok)
}
