// Package spots управляет точками раздачи еды/помощи: созданием,
// видимостью по календарному окну и ленивой очисткой.
// models.go описывает структуры данных для работы с таблицей locations.
package spots

import (
	"strings"
	"time"

	"reliefmap/internal/common"
	"reliefmap/internal/features/moderation"
)

// Spot представляет точку раздачи в базе данных.
type Spot struct {
	ID            string     `db:"id"`             // UUID, генерируется сервером
	Name          string     `db:"name"`           // Название точки
	Area          string     `db:"area"`           // Район (заполняется геокодером)
	Category      string     `db:"category"`       // Категория (еда, вода, медикаменты...)
	Lat           float64    `db:"lat"`            // Широта
	Lng           float64    `db:"lng"`            // Долгота
	Date          time.Time  `db:"date"`           // Календарный день раздачи
	ExpiryDate    *time.Time `db:"expiry_date"`    // Последний день видимости (может быть nil)
	Packets       int        `db:"packets"`        // Оценка числа пакетов
	Notes         string     `db:"notes"`          // Свободный текст
	ContactName   string     `db:"contact_name"`   // Контактное лицо (опционально)
	ContactNumber string     `db:"contact_number"` // Телефон (опционально)
	Upvotes       int        `db:"upvotes"`        // Плюсы (всегда == числу up-записей в votes)
	Downvotes     int        `db:"downvotes"`      // Минусы (всегда == числу down-записей в votes)
	CreatedAt     time.Time  `db:"created_at"`     // Когда запись создана в БД
}

// VisibleOn — видна ли точка на день ref: создана не позже ref и либо
// бессрочна, либо ещё не истекла. Go-зеркало SQL-фильтра ListVisible;
// граница окна — ExpiryDate включительно, истёкшая вчера точка невидима.
func (s *Spot) VisibleOn(ref time.Time) bool {
	if s.Date.After(ref) {
		return false
	}
	return s.ExpiryDate == nil || !s.ExpiryDate.Before(ref)
}

// Draft — черновик точки, приходящий от клиента при создании.
// Даты — строки ГГГГ-ММ-ДД, координаты — указатели, чтобы отличать
// «не передано» от нуля.
type Draft struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	Date          string   `json:"date"`        // пусто — сегодняшний день
	ExpiryDate    string   `json:"expiry_date"` // пусто — бессрочно
	Packets       int      `json:"packets"`
	Notes         string   `json:"notes"`
	ContactName   string   `json:"contact_name"`
	ContactNumber string   `json:"contact_number"`
	// Area клиент может передать сам (например, приняв предложение
	// из фида ориентиров); пусто — спросим геокодер
	Area string `json:"area"`
}

// Validate проверяет черновик. Пустое название и отсутствующие
// координаты — ошибки валидации, операция прерывается без записи.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return common.ErrEmptyName
	}
	if d.Lat == nil || d.Lng == nil {
		return common.ErrMissingCoordinates
	}
	if d.Date != "" {
		if _, err := common.ParseDay(d.Date); err != nil {
			return err
		}
	}
	if d.ExpiryDate != "" {
		if _, err := common.ParseDay(d.ExpiryDate); err != nil {
			return err
		}
	}
	return nil
}

// View — точка в том виде, в каком она уходит клиенту:
// с вычисленным классом доверия и, если клиент передал свои координаты,
// расстоянием и оценкой времени пешком.
type View struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Area          string            `json:"area"`
	Category      string            `json:"category"`
	Lat           float64           `json:"lat"`
	Lng           float64           `json:"lng"`
	Date          string            `json:"date"`
	ExpiryDate    string            `json:"expiry_date,omitempty"`
	Packets       int               `json:"packets"`
	Notes         string            `json:"notes,omitempty"`
	ContactName   string            `json:"contact_name,omitempty"`
	ContactNumber string            `json:"contact_number,omitempty"`
	Upvotes       int               `json:"upvotes"`
	Downvotes     int               `json:"downvotes"`
	Status        moderation.Status `json:"status"`
	DistanceKm    *float64          `json:"distance_km,omitempty"`
	TravelMinutes *int              `json:"travel_minutes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
