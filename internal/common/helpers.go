// Package common содержит общие утилиты, используемые во всём проекте.
// helpers.go — работа с календарными датами в часовом поясе Дакки.
// Видимость точек и срок их жизни считаются по календарному дню,
// а не по timestamp, поэтому все обрезается до полуночи местного времени.
package common

import "time"

// DayFormat — формат календарного дня в API и в БД.
const DayFormat = "2006-01-02"

// GetDhakaTime возвращает текущее время в часовом поясе Asia/Dhaka.
// Раздача еды привязана к местному дню, не к UTC.
func GetDhakaTime() time.Time {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		// Если база зон недоступна — UTC+6 вручную
		loc = time.FixedZone("BST", 6*60*60)
	}
	return time.Now().In(loc)
}

// GetDhakaDate возвращает только дату (без времени) в часовом поясе Дакки.
func GetDhakaDate() time.Time {
	return Truncate(GetDhakaTime())
}

// Truncate обрезает время до начала календарного дня.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay разбирает календарный день из строки ГГГГ-ММ-ДД.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDay форматирует время как календарный день ГГГГ-ММ-ДД.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
