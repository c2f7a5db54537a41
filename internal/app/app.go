// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, Redis, репозитории, сервисы,
// обработчики и собирает всё в HTTP-роутер.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/config"
	"reliefmap/internal/db/postgres"
	"reliefmap/internal/features/admin"
	"reliefmap/internal/features/comments"
	"reliefmap/internal/features/landmarks"
	"reliefmap/internal/features/moderation"
	"reliefmap/internal/features/spots"
	"reliefmap/internal/features/votes"
	"reliefmap/internal/geocode"
	"reliefmap/internal/jobs"
	"reliefmap/internal/notify"
	"reliefmap/internal/server"
	"reliefmap/internal/server/middleware"
)

// App содержит все компоненты приложения.
type App struct {
	Router    *gin.Engine
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Limiter   *middleware.RateLimiter
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Redis (кеш геокодера, опционально) ===
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			// Кеш — не критичная зависимость: геокодер работает и без него
			log.WithError(err).Warn("Redis недоступен, кеш геокодера отключён")
			rdb = nil
		} else {
			log.Info("Подключение к Redis установлено")
		}
	}

	// === 3. Внешние сотрудники ===
	resolver := geocode.New(
		cfg.GeocoderURL, cfg.GeocoderTimeout,
		rdb, cfg.GeocodeCacheTTL, cfg.GeocoderFallbackArea,
	)
	feed := landmarks.NewFeedClient(cfg.LandmarkFeedURL, cfg.LandmarkFeedTimeout)
	notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.NotifyTimeout)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации уведомлений: %w", err)
	}

	// === 4. Политика модерации ===
	policy := moderation.NewPolicy(
		cfg.ModerationFlagNetDownvotes,
		cfg.ModerationSuppressDownvotes,
		cfg.ModerationDeleteDownvotes,
	)

	// === 5. Репозитории ===
	spotRepo := spots.NewRepository(pool)
	voteRepo := votes.NewRepository(pool, spotRepo)
	commentRepo := comments.NewRepository(pool)

	// === 6. Сервисы ===
	spotService := spots.NewService(spotRepo, policy, resolver, notifier, cfg)
	voteService := votes.NewService(voteRepo, cfg)
	commentService := comments.NewService(commentRepo)
	landmarkService := landmarks.NewService(
		landmarks.NewDeduper(cfg.LandmarkEpsilonMeters), feed, spotRepo,
	)
	adminService := admin.NewService(cfg.AdminPasswordHash)

	// === 7. Обработчики и роутер ===
	handlers := &server.Handlers{
		Spots:     spots.NewHandler(spotService),
		Votes:     votes.NewHandler(voteService),
		Comments:  comments.NewHandler(commentService),
		Landmarks: landmarks.NewHandler(landmarkService),
		Admin:     admin.NewHandler(adminService, spotService),
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	router := server.New(cfg, handlers, limiter)

	// === 8. Планировщик задач ===
	scheduler := jobs.NewScheduler(voteService, spotService)

	return &App{
		Router:    router,
		Scheduler: scheduler,
		DB:        pool,
		Redis:     rdb,
		Limiter:   limiter,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Инициализируем систему миграций
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Locations},
		{2, migration002Votes},
		{3, migration003Comments},
	}

	for _, m := range migrations {
		applied, err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql)
		if err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		if applied {
			log.Infof("Миграция %d применена", m.version)
		}
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Locations = `
CREATE TABLE IF NOT EXISTS locations (
    id VARCHAR(64) PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    area VARCHAR(255) DEFAULT '',
    category VARCHAR(64) DEFAULT '',
    lat DOUBLE PRECISION NOT NULL,
    lng DOUBLE PRECISION NOT NULL,
    date DATE NOT NULL,
    expiry_date DATE,
    packets INTEGER DEFAULT 0,
    notes TEXT DEFAULT '',
    contact_name VARCHAR(255) DEFAULT '',
    contact_number VARCHAR(64) DEFAULT '',
    upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    downvotes INTEGER NOT NULL DEFAULT 0 CHECK (downvotes >= 0),
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_locations_date ON locations(date DESC);
CREATE INDEX IF NOT EXISTS idx_locations_expiry ON locations(expiry_date);
CREATE INDEX IF NOT EXISTS idx_locations_downvotes ON locations(downvotes);
`

var migration002Votes = `
CREATE TABLE IF NOT EXISTS votes (
    id BIGSERIAL PRIMARY KEY,
    location_id VARCHAR(64) NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
    user_id VARCHAR(128) NOT NULL,
    vote_type VARCHAR(8) NOT NULL CHECK (vote_type IN ('up', 'down')),
    created_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (location_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_votes_location ON votes(location_id);
`

var migration003Comments = `
CREATE TABLE IF NOT EXISTS comments (
    id BIGSERIAL PRIMARY KEY,
    location_id VARCHAR(64) NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_location ON comments(location_id, created_at DESC);
`
