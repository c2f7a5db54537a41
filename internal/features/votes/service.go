// Package votes — service.go содержит бизнес-логику голосования:
// ограниченный повтор транзакции при конфликте и метрики.
package votes

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
	"reliefmap/internal/config"
	"reliefmap/internal/metrics"
)

// Service управляет голосованием.
type Service struct {
	repo *Repository
	cfg  *config.Config
}

// NewService создаёт сервис голосования.
func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Cast проверяет вход и проводит голос, повторяя транзакцию
// ограниченное число раз при конфликте. Повторное голосование
// разрешено: тот же голос снимается, противоположный — меняет запись.
func (s *Service) Cast(ctx context.Context, spotID, userID string, direction Direction) (*CastResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.ErrEmptyUserID
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.VoteRetryAttempts; attempt++ {
		result, err := s.repo.CastVote(ctx, spotID, userID, direction)
		if err == nil {
			metrics.VotesCastTotal.WithLabelValues(string(result.Result)).Inc()
			return result, nil
		}
		if !errors.Is(err, common.ErrVoteConflict) {
			return nil, err
		}

		lastErr = err
		metrics.VoteConflictRetriesTotal.Inc()
		log.WithFields(log.Fields{
			"spot_id": spotID,
			"attempt": attempt,
		}).Debug("Конфликт голосования, повторяем транзакцию")

		// Короткая пауза, чтобы конкурент успел закоммититься
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
		}
	}
	return nil, lastErr
}

// ReconcileCounters — сверка счётчиков с леджером для планировщика.
func (s *Service) ReconcileCounters(ctx context.Context) (int64, error) {
	return s.repo.ReconcileCounters(ctx)
}
