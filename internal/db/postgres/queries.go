// Package postgres — queries.go выполняет встроенные миграции схемы.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ExecMigrationSQL применяет одну миграцию в транзакции.
// Уже применённые версии пропускаются по записи в schema_migrations.
// Возвращает true, если миграция реально выполнилась.
func ExecMigrationSQL(ctx context.Context, pool *pgxpool.Pool, version int, sql string) (bool, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var applied bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version,
	).Scan(&applied)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки миграции %d: %w", version, err)
	}
	if applied {
		return false, nil
	}

	if _, err := tx.Exec(ctx, sql); err != nil {
		return false, fmt.Errorf("ошибка выполнения миграции %d: %w", version, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version) VALUES ($1)", version,
	); err != nil {
		return false, fmt.Errorf("ошибка записи версии %d: %w", version, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("ошибка коммита миграции %d: %w", version, err)
	}
	return true, nil
}
