// Package spots — repository.go выполняет операции с таблицей locations.
// Удаление точки каскадом сносит её голоса и комментарии (FK ON DELETE CASCADE),
// отдельной уборки не требуется.
package spots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reliefmap/internal/common"
)

// Repository работает с таблицей locations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий точек раздачи.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const spotColumns = `
	id, name, area, category, lat, lng, date, expiry_date,
	packets, notes, contact_name, contact_number, upvotes, downvotes, created_at
`

func scanSpot(row pgx.Row) (*Spot, error) {
	var s Spot
	err := row.Scan(
		&s.ID, &s.Name, &s.Area, &s.Category, &s.Lat, &s.Lng,
		&s.Date, &s.ExpiryDate, &s.Packets, &s.Notes,
		&s.ContactName, &s.ContactNumber, &s.Upvotes, &s.Downvotes, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create вставляет новую точку. Счётчики голосов начинаются с нуля.
func (r *Repository) Create(ctx context.Context, s *Spot) error {
	query := `
		INSERT INTO locations (
			id, name, area, category, lat, lng, date, expiry_date,
			packets, notes, contact_name, contact_number, upvotes, downvotes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, 0)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Area, s.Category, s.Lat, s.Lng,
		s.Date, s.ExpiryDate, s.Packets, s.Notes, s.ContactName, s.ContactNumber,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания точки: %w", err)
	}
	return nil
}

// GetByID возвращает точку по идентификатору.
func (r *Repository) GetByID(ctx context.Context, id string) (*Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM locations WHERE id = $1`
	s, err := scanSpot(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения точки: %w", err)
	}
	return s, nil
}

// ListVisible возвращает точки, видимые на указанную дату:
// созданные не позже неё и либо бессрочные, либо ещё не истёкшие.
// Сортировка — сначала самые свежие.
func (r *Repository) ListVisible(ctx context.Context, refDate time.Time) ([]*Spot, error) {
	query := `
		SELECT ` + spotColumns + `
		FROM locations
		WHERE date <= $1 AND (expiry_date IS NULL OR expiry_date >= $1)
		ORDER BY date DESC, created_at DESC
	`
	rows, err := r.db.Query(ctx, query, refDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки точек: %w", err)
	}
	defer rows.Close()

	var result []*Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования точки: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Remove удаляет точку. Голоса и комментарии уходят каскадом.
func (r *Repository) Remove(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления точки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrSpotNotFound
	}
	return nil
}

// PurgeStale — ленивая очистка: удаляет точки, которые модерация довела
// до порога удаления, и точки, чей срок истёк строго раньше today.
// Вызывается перед каждой выборкой ListVisible и ночным свипом.
// Возвращает число истёкших и названия удалённых модерацией —
// сервис объявляет каждую в координационный чат.
func (r *Repository) PurgeStale(ctx context.Context, today time.Time, deleteThreshold int) (expired int64, moderated []string, err error) {
	rows, err := r.db.Query(ctx,
		`DELETE FROM locations WHERE downvotes >= $1 RETURNING name`, deleteThreshold)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка очистки по модерации: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return 0, nil, fmt.Errorf("ошибка сканирования удалённой точки: %w", err)
		}
		moderated = append(moderated, name)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("ошибка очистки по модерации: %w", err)
	}

	tagExp, err := r.db.Exec(ctx,
		`DELETE FROM locations WHERE expiry_date IS NOT NULL AND expiry_date < $1`, today)
	if err != nil {
		return 0, moderated, fmt.Errorf("ошибка очистки истёкших: %w", err)
	}

	return tagExp.RowsAffected(), moderated, nil
}

// counterField проверяет имя счётчика. Имя подставляется в SQL,
// поэтому допускаются только два известных значения.
func counterField(field string) (string, error) {
	switch field {
	case "upvotes", "downvotes":
		return field, nil
	default:
		return "", fmt.Errorf("неизвестный счётчик %q", field)
	}
}

// ApplyCounterDeltaTx атомарно меняет счётчик точки внутри чужой транзакции.
// Счётчик никогда не опускается ниже нуля (GREATEST).
// Используется леджером голосов: запись голоса и сдвиг счётчика
// коммитятся одной транзакцией.
func (r *Repository) ApplyCounterDeltaTx(ctx context.Context, tx pgx.Tx, id, field string, delta int) error {
	col, err := counterField(field)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(
		`UPDATE locations SET %s = GREATEST(%s + $2, 0) WHERE id = $1`, col, col)
	tag, err := tx.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("ошибка изменения счётчика: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrSpotNotFound
	}
	return nil
}
