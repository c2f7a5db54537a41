// Package votes — repository.go выполняет транзакцию голосования.
// Запись леджера и сдвиг счётчиков коммитятся одной транзакцией БД:
// параллельный второй голос видит либо состояние «до», либо «после»,
// но никогда не частичное.
package votes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reliefmap/internal/common"
	"reliefmap/internal/features/spots"
)

// Коды ошибок PostgreSQL, которые превращаются в ErrVoteConflict:
// нарушение уникальности (гонка двух INSERT одной пары) и
// сбой сериализации.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgSerializationFail   = "40001"
)

// Repository работает с таблицей votes и счётчиками locations.
type Repository struct {
	db        *pgxpool.Pool
	spotsRepo *spots.Repository
}

// NewRepository создаёт репозиторий леджера.
// spotsRepo нужен для атомарного сдвига счётчиков внутри транзакции голосования.
func NewRepository(db *pgxpool.Pool, spotsRepo *spots.Repository) *Repository {
	return &Repository{db: db, spotsRepo: spotsRepo}
}

// CastVote выполняет одну попытку голосования в транзакции.
//
// Шаги:
//  1. убедиться, что точка существует;
//  2. взять запись леджера пары (точка, пользователь) с блокировкой FOR UPDATE —
//     повторные голоса того же пользователя сериализуются на этой строке;
//  3. по чистой функции decide вставить/удалить/обновить запись;
//  4. сдвинуть счётчики точки (через репозиторий точек, с clamp на нуле);
//  5. прочитать свежие счётчики и закоммитить.
//
// Гонка двух первых голосов одной пары упирается в уникальный индекс
// (location_id, user_id) и возвращает ErrVoteConflict — сервис повторит.
// Голоса по разным точкам друг друга не блокируют: блокировки строчные.
func (r *Repository) CastVote(ctx context.Context, spotID, userID string, requested Direction) (*CastResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM locations WHERE id = $1)`, spotID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки точки: %w", err)
	}
	if !exists {
		return nil, common.ErrSpotNotFound
	}

	var existing *Direction
	var current Direction
	err = tx.QueryRow(ctx, `
		SELECT vote_type FROM votes
		WHERE location_id = $1 AND user_id = $2
		FOR UPDATE
	`, spotID, userID).Scan(&current)
	switch {
	case err == nil:
		existing = &current
	case errors.Is(err, pgx.ErrNoRows):
		existing = nil
	default:
		return nil, fmt.Errorf("ошибка чтения леджера: %w", err)
	}

	outcome := decide(existing, requested)

	switch outcome.Result {
	case ResultRecorded:
		_, err = tx.Exec(ctx, `
			INSERT INTO votes (location_id, user_id, vote_type)
			VALUES ($1, $2, $3)
		`, spotID, userID, requested)
	case ResultRetracted:
		_, err = tx.Exec(ctx, `
			DELETE FROM votes WHERE location_id = $1 AND user_id = $2
		`, spotID, userID)
	case ResultChanged:
		_, err = tx.Exec(ctx, `
			UPDATE votes SET vote_type = $3
			WHERE location_id = $1 AND user_id = $2
		`, spotID, userID, requested)
	}
	if err != nil {
		return nil, mapPgError(err)
	}

	if outcome.Dec != "" {
		if err := r.spotsRepo.ApplyCounterDeltaTx(ctx, tx, spotID, outcome.Dec.CounterField(), -1); err != nil {
			return nil, err
		}
	}
	if outcome.Inc != "" {
		if err := r.spotsRepo.ApplyCounterDeltaTx(ctx, tx, spotID, outcome.Inc.CounterField(), +1); err != nil {
			return nil, err
		}
	}

	result := &CastResult{Result: outcome.Result}
	err = tx.QueryRow(ctx,
		`SELECT upvotes, downvotes FROM locations WHERE id = $1`, spotID,
	).Scan(&result.Upvotes, &result.Downvotes)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения счётчиков: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapPgError(err)
	}
	return result, nil
}

// mapPgError переводит коды PostgreSQL в ошибки движка.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgSerializationFail:
			return common.ErrVoteConflict
		case pgForeignKeyViolation:
			// Точку успели удалить между проверкой и вставкой
			return common.ErrSpotNotFound
		}
	}
	return fmt.Errorf("ошибка записи голоса: %w", err)
}

// ReconcileCounters сверяет счётчики всех точек с содержимым леджера
// и чинит расхождения (дрейф возможен только при внешнем вмешательстве
// в БД — транзакция голосования его не создаёт).
// Возвращает число исправленных точек.
func (r *Repository) ReconcileCounters(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations l
		SET upvotes = v.up, downvotes = v.down
		FROM (
			SELECT loc.id,
			       COALESCE(SUM(CASE WHEN vt.vote_type = 'up' THEN 1 ELSE 0 END), 0)   AS up,
			       COALESCE(SUM(CASE WHEN vt.vote_type = 'down' THEN 1 ELSE 0 END), 0) AS down
			FROM locations loc
			LEFT JOIN votes vt ON vt.location_id = loc.id
			GROUP BY loc.id
		) v
		WHERE v.id = l.id AND (l.upvotes <> v.up OR l.downvotes <> v.down)
	`)
	if err != nil {
		return 0, fmt.Errorf("ошибка сверки счётчиков: %w", err)
	}
	return tag.RowsAffected(), nil
}
