// Package geo — чистая геоматематика без состояния.
// Расстояние по большому кругу (haversine) и оценка времени в пути.
// Все функции детерминированы и безопасны для параллельного вызова.
package geo

import "math"

// EarthRadiusKm — средний радиус Земли в километрах.
// Сферическое приближение: для городских масштабов точности достаточно.
const EarthRadiusKm = 6371.0

// Point — точка в координатах WGS84.
type Point struct {
	Lat float64 // широта
	Lng float64 // долгота
}

// DegreesToRadians переводит градусы в радианы.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// DistanceKm вычисляет расстояние между двумя точками по формуле haversine.
//
// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
// c = 2 * atan2(√a, √(1-a))
// d = R * c
func DistanceKm(p1, p2 Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lon1 := DegreesToRadians(p1.Lng)
	lat2 := DegreesToRadians(p2.Lat)
	lon2 := DegreesToRadians(p2.Lng)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceMeters — то же расстояние в метрах.
// Используется дедупликацией ориентиров (epsilon задаётся в метрах).
func DistanceMeters(p1, p2 Point) float64 {
	return DistanceKm(p1, p2) * 1000.0
}

// TravelMinutes оценивает время в пути в минутах при заданной скорости.
// Возвращает nil, если расстояние не число (NaN/Inf) или скорость некорректна.
func TravelMinutes(distanceKm, speedKmh float64) *int {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return nil
	}
	if speedKmh <= 0 || math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) {
		return nil
	}
	minutes := int(math.Round(distanceKm / speedKmh * 60))
	return &minutes
}
