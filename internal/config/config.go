// Package config загружает конфигурацию сервиса из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
// Все пороги модерации и константы дедупликации живут здесь, а не в коде
// компонентов — компоненты получают их при конструировании.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- HTTP ---
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// Таймаут graceful shutdown сервера
	HTTPShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	// --- Database ---
	// В Docker внутри контейнера "localhost" почти всегда неправильно.
	// Дефолт ставим "postgres" (имя сервиса в docker-compose), для локалки DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"reliefmap"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"reliefmap"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Dhaka"`

	// --- Модерация ---
	// FLAGGED: downvotes - upvotes >= порога (точка видна, но помечена)
	ModerationFlagNetDownvotes int `envconfig:"MODERATION_FLAG_NET_DOWNVOTES" default:"5"`
	// SUPPRESSED: downvotes >= порога (точка затемняется в выдаче)
	ModerationSuppressDownvotes int `envconfig:"MODERATION_SUPPRESS_DOWNVOTES" default:"10"`
	// DELETE: downvotes >= порога (точка удаляется при следующем чтении)
	ModerationDeleteDownvotes int `envconfig:"MODERATION_DELETE_DOWNVOTES" default:"20"`

	// --- Голосование ---
	// Сколько раз повторять транзакцию голосования при конфликте
	VoteRetryAttempts int `envconfig:"VOTE_RETRY_ATTEMPTS" default:"3"`

	// --- Дедупликация ориентиров ---
	// Кандидат считается дубликатом, если существующая точка ближе (метры)
	LandmarkEpsilonMeters float64 `envconfig:"LANDMARK_EPSILON_METERS" default:"10"`
	// URL внешнего фида ориентиров (пусто — фид отключён)
	LandmarkFeedURL     string        `envconfig:"LANDMARK_FEED_URL" default:""`
	LandmarkFeedTimeout time.Duration `envconfig:"LANDMARK_FEED_TIMEOUT" default:"5s"`

	// --- Обратное геокодирование ---
	// URL обратного геокодера (пусто — всегда метка по умолчанию)
	GeocoderURL     string        `envconfig:"GEOCODER_URL" default:""`
	GeocoderTimeout time.Duration `envconfig:"GEOCODER_TIMEOUT" default:"3s"`
	// Метка района, если геокодер недоступен
	GeocoderFallbackArea string        `envconfig:"GEOCODER_FALLBACK_AREA" default:"Unknown area"`
	GeocodeCacheTTL      time.Duration `envconfig:"GEOCODE_CACHE_TTL" default:"1h"`

	// --- Redis (кеш геокодера, опционально) ---
	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// --- Оценка времени в пути ---
	// Скорость пешехода для travel_minutes в выдаче
	TravelSpeedKmh float64 `envconfig:"TRAVEL_SPEED_KMH" default:"4.5"`

	// --- Telegram-уведомления (опционально) ---
	// Пустой токен — уведомления отключены
	TelegramBotToken string        `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	TelegramChatID   int64         `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
	NotifyTimeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`

	// --- Admin ---
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.ModerationFlagNetDownvotes <= 0 {
		return fmt.Errorf("MODERATION_FLAG_NET_DOWNVOTES должен быть > 0")
	}
	if c.ModerationSuppressDownvotes <= 0 {
		return fmt.Errorf("MODERATION_SUPPRESS_DOWNVOTES должен быть > 0")
	}
	// Удаление — самый строгий порог, иначе SUPPRESSED недостижим
	if c.ModerationDeleteDownvotes <= c.ModerationSuppressDownvotes {
		return fmt.Errorf("MODERATION_DELETE_DOWNVOTES должен быть больше MODERATION_SUPPRESS_DOWNVOTES")
	}
	if c.VoteRetryAttempts <= 0 {
		return fmt.Errorf("VOTE_RETRY_ATTEMPTS должен быть > 0")
	}
	if c.LandmarkEpsilonMeters <= 0 {
		return fmt.Errorf("LANDMARK_EPSILON_METERS должен быть > 0")
	}
	if c.TravelSpeedKmh <= 0 {
		return fmt.Errorf("TRAVEL_SPEED_KMH должен быть > 0")
	}
	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID не задан при включённых уведомлениях")
	}
	return nil
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
