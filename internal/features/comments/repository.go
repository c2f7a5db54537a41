// Package comments — repository.go выполняет операции с таблицей comments.
package comments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reliefmap/internal/common"
)

// Repository работает с таблицей comments.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий комментариев.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Add вставляет комментарий к живой точке.
// Если точки нет — внешний ключ отклонит вставку, это ErrSpotNotFound.
func (r *Repository) Add(ctx context.Context, spotID, text string) (*Comment, error) {
	comment := &Comment{LocationID: spotID, Text: text}
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (location_id, text)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, spotID, text).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, common.ErrSpotNotFound
		}
		return nil, fmt.Errorf("ошибка добавления комментария: %w", err)
	}
	return comment, nil
}

// List возвращает комментарии точки, сначала самые новые.
func (r *Repository) List(ctx context.Context, spotID string) ([]*Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, location_id, text, created_at
		FROM comments
		WHERE location_id = $1
		ORDER BY created_at DESC, id DESC
	`, spotID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки комментариев: %w", err)
	}
	defer rows.Close()

	var result []*Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.LocationID, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
