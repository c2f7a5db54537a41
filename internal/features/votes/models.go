// Package votes реализует леджер голосов: не больше одной записи
// на пару (точка, пользователь), счётчики точки всегда согласованы
// с содержимым леджера.
// models.go описывает структуры и чистую логику ветвления голоса.
package votes

import (
	"time"

	"reliefmap/internal/common"
)

// Direction — направление голоса.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection разбирает направление из строки запроса.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", common.ErrInvalidDirection
	}
}

// CounterField возвращает имя счётчика точки для направления.
func (d Direction) CounterField() string {
	if d == DirectionUp {
		return "upvotes"
	}
	return "downvotes"
}

// Opposite возвращает противоположное направление.
func (d Direction) Opposite() Direction {
	if d == DirectionUp {
		return DirectionDown
	}
	return DirectionUp
}

// Result — исход операции голосования.
type Result string

const (
	// ResultRecorded — голос записан (записи не было)
	ResultRecorded Result = "recorded"
	// ResultRetracted — голос снят (повтор того же направления)
	ResultRetracted Result = "retracted"
	// ResultChanged — голос изменён на противоположный
	ResultChanged Result = "changed"
)

// Record — запись леджера: один голос пользователя за точку.
type Record struct {
	ID         int64     `db:"id"`
	LocationID string    `db:"location_id"`
	UserID     string    `db:"user_id"`
	VoteType   Direction `db:"vote_type"`
	CreatedAt  time.Time `db:"created_at"`
}

// Outcome — что нужно сделать с леджером и счётчиками.
// Inc/Dec — направления, чьи счётчики сдвигаются на +1/-1
// (пустая строка — счётчик не трогаем).
type Outcome struct {
	Result Result
	Inc    Direction
	Dec    Direction
}

// decide — чистое ядро леджера: по существующей записи (nil — записи нет)
// и запрошенному направлению возвращает исход.
//
//	нет записи            → вставить, +1 запрошенному      (recorded)
//	то же направление     → удалить, -1 этому направлению  (retracted)
//	обратное направление  → обновить, -1 старому, +1 новому (changed)
func decide(existing *Direction, requested Direction) Outcome {
	if existing == nil {
		return Outcome{Result: ResultRecorded, Inc: requested}
	}
	if *existing == requested {
		return Outcome{Result: ResultRetracted, Dec: requested}
	}
	return Outcome{Result: ResultChanged, Inc: requested, Dec: *existing}
}

// CastResult — итог голосования для клиента: исход и свежие счётчики.
type CastResult struct {
	Result    Result `json:"result"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}
