// Package landmarks сверяет кандидатов-ориентиров из внешнего фида
// с уже известными точками раздачи и отдаёт только действительно новые.
// Кандидаты эфемерны: движок их не хранит, только фильтрует.
// models.go описывает структуры кандидата и рамки запроса.
package landmarks

// Candidate — кандидат-ориентир из внешнего фида.
type Candidate struct {
	ID   string  `json:"id"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// BBox — географическая рамка запроса к фиду.
type BBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}
