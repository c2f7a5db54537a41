// Package landmarks — deduper.go реализует дедупликацию кандидатов.
package landmarks

import (
	"reliefmap/internal/features/spots"
	"reliefmap/internal/geo"
)

// Deduper отсеивает кандидатов, уже представленных существующей точкой.
// Epsilon приходит из конфигурации (по умолчанию ~10 метров).
type Deduper struct {
	epsilonMeters float64
}

// NewDeduper создаёт дедупликатор с заданным допуском в метрах.
func NewDeduper(epsilonMeters float64) *Deduper {
	return &Deduper{epsilonMeters: epsilonMeters}
}

// Reconcile возвращает только кандидатов, рядом с которыми (ближе epsilon)
// нет ни одной существующей точки. Сложность O(кандидаты × точки) —
// приемлемо: фид ограничен рамкой видимой области карты.
func (d *Deduper) Reconcile(candidates []Candidate, existing []*spots.Spot) []Candidate {
	novel := make([]Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if !d.represented(cand, existing) {
			novel = append(novel, cand)
		}
	}
	return novel
}

// represented — есть ли существующая точка ближе epsilon к кандидату.
func (d *Deduper) represented(cand Candidate, existing []*spots.Spot) bool {
	from := geo.Point{Lat: cand.Lat, Lng: cand.Lng}
	for _, spot := range existing {
		dist := geo.DistanceMeters(from, geo.Point{Lat: spot.Lat, Lng: spot.Lng})
		if dist <= d.epsilonMeters {
			return true
		}
	}
	return false
}
