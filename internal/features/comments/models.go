// Package comments — лента комментариев к точке раздачи.
// Только добавление и чтение: редактирования и удаления нет,
// комментарии уходят каскадом вместе с точкой.
package comments

import "time"

// Comment — один комментарий к точке.
type Comment struct {
	ID         int64     `db:"id" json:"id"`
	LocationID string    `db:"location_id" json:"location_id"`
	Text       string    `db:"text" json:"text"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
