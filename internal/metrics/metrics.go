// Package metrics — счётчики Prometheus для основных операций движка.
// Экспортируются через /metrics, регистрация через promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpotsCreatedTotal — сколько точек раздачи создано
	SpotsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_spots_created_total",
		Help: "Количество созданных точек раздачи",
	})

	// SpotsReapedTotal — сколько точек удалено ленивой очисткой, по причинам
	SpotsReapedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reliefmap_spots_reaped_total",
		Help: "Количество точек, удалённых при чтении (expired / moderation)",
	}, []string{"reason"})

	// VotesCastTotal — голоса по результату (recorded / retracted / changed)
	VotesCastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reliefmap_votes_cast_total",
		Help: "Количество обработанных голосов по результату",
	}, []string{"result"})

	// VoteConflictRetriesTotal — повторы транзакции голосования после конфликта
	VoteConflictRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_vote_conflict_retries_total",
		Help: "Количество повторов транзакции голосования из-за конфликта",
	})

	// GeocodeCacheHitsTotal / GeocodeCacheMissesTotal — кеш обратного геокодера
	GeocodeCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_geocode_cache_hits_total",
		Help: "Попадания в кеш обратного геокодирования",
	})
	GeocodeCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_geocode_cache_misses_total",
		Help: "Промахи кеша обратного геокодирования",
	})

	// GeocodeFailuresTotal — отказы внешнего геокодера (деградация до заглушки)
	GeocodeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_geocode_failures_total",
		Help: "Отказы обратного геокодера (использована метка по умолчанию)",
	})

	// LandmarkFeedFailuresTotal — отказы внешнего фида ориентиров
	LandmarkFeedFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_landmark_feed_failures_total",
		Help: "Отказы фида ориентиров (возвращён пустой список)",
	})

	// LandmarkSuggestionsTotal — сколько новых предложений отдано после дедупликации
	LandmarkSuggestionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reliefmap_landmark_suggestions_total",
		Help: "Количество ориентиров, прошедших дедупликацию",
	})

	// RequestsTotal — HTTP-запросы по методу/пути/статусу
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reliefmap_http_requests_total",
		Help: "Количество HTTP-запросов",
	}, []string{"method", "path", "status"})

	// RequestDurationSeconds — длительность HTTP-запросов
	RequestDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reliefmap_http_request_duration_seconds",
		Help:    "Длительность обработки HTTP-запросов",
		Buckets: prometheus.DefBuckets,
	})
)
