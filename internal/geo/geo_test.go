package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	dhaka := Point{Lat: 23.8103, Lng: 90.4125}
	chittagong := Point{Lat: 22.3569, Lng: 91.7832}

	// Известное расстояние Дакка—Читтагонг ~214 км
	assert.InDelta(t, 214.0, DistanceKm(dhaka, chittagong), 2.0)

	// Расстояние симметрично
	assert.InDelta(t, DistanceKm(dhaka, chittagong), DistanceKm(chittagong, dhaka), 1e-9)

	// Точка до самой себя — ноль
	assert.Zero(t, DistanceKm(dhaka, dhaka))
}

func TestDistanceMeters(t *testing.T) {
	// 0.0001 градуса долготы на экваторе ~ 11 метров
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 0.0001}
	assert.InDelta(t, 11.1, DistanceMeters(a, b), 0.2)
}

func TestTravelMinutes(t *testing.T) {
	m := TravelMinutes(5, 5)
	require.NotNil(t, m)
	assert.Equal(t, 60, *m)

	// Округление до ближайшей минуты
	m = TravelMinutes(1, 4.5)
	require.NotNil(t, m)
	assert.Equal(t, 13, *m)

	m = TravelMinutes(0, 4.5)
	require.NotNil(t, m)
	assert.Equal(t, 0, *m)
}

func TestTravelMinutesInvalidInput(t *testing.T) {
	assert.Nil(t, TravelMinutes(math.NaN(), 5))
	assert.Nil(t, TravelMinutes(math.Inf(1), 5))
	assert.Nil(t, TravelMinutes(-1, 5))
	assert.Nil(t, TravelMinutes(5, 0))
	assert.Nil(t, TravelMinutes(5, -3))
	assert.Nil(t, TravelMinutes(5, math.NaN()))
}
