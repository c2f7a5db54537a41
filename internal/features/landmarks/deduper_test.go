package landmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefmap/internal/features/spots"
)

func TestReconcileSuppressesNearbyDuplicate(t *testing.T) {
	d := NewDeduper(10) // 10 метров

	candidate := Candidate{ID: "lm-1", Lat: 23.81, Lng: 90.41, Name: "Школа"}
	// Существующая точка в паре сантиметров от кандидата
	existing := []*spots.Spot{{ID: "s-1", Lat: 23.8100001, Lng: 90.4100001}}

	novel := d.Reconcile([]Candidate{candidate}, existing)
	assert.Empty(t, novel)
}

func TestReconcileKeepsDistantCandidate(t *testing.T) {
	d := NewDeduper(10)

	candidate := Candidate{ID: "lm-1", Lat: 23.81, Lng: 90.41, Name: "Школа"}
	// Точка в ~500 метрах — это не дубликат
	existing := []*spots.Spot{{ID: "s-1", Lat: 23.8145, Lng: 90.41}}

	novel := d.Reconcile([]Candidate{candidate}, existing)
	require.Len(t, novel, 1)
	assert.Equal(t, candidate, novel[0])
}

func TestReconcileMixed(t *testing.T) {
	d := NewDeduper(10)

	near := Candidate{ID: "lm-near", Lat: 23.81, Lng: 90.41}
	far := Candidate{ID: "lm-far", Lat: 23.85, Lng: 90.45}
	existing := []*spots.Spot{{ID: "s-1", Lat: 23.81, Lng: 90.41}}

	novel := d.Reconcile([]Candidate{near, far}, existing)
	require.Len(t, novel, 1)
	assert.Equal(t, "lm-far", novel[0].ID)
}

func TestReconcileNoExistingSpots(t *testing.T) {
	d := NewDeduper(10)

	candidates := []Candidate{
		{ID: "a", Lat: 23.81, Lng: 90.41},
		{ID: "b", Lat: 23.82, Lng: 90.42},
	}

	novel := d.Reconcile(candidates, nil)
	assert.Len(t, novel, 2)
}

func TestReconcileEmptyCandidates(t *testing.T) {
	d := NewDeduper(10)
	assert.Empty(t, d.Reconcile(nil, []*spots.Spot{{ID: "s-1"}}))
}
