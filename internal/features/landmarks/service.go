// Package landmarks — service.go связывает фид, дедупликацию и точки.
package landmarks

import (
	"context"

	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
	"reliefmap/internal/features/spots"
	"reliefmap/internal/metrics"
)

// Service отдаёт предложения «подтвердить как точку раздачи».
type Service struct {
	deduper   *Deduper
	feed      *FeedClient
	spotsRepo *spots.Repository
}

// NewService создаёт сервис ориентиров.
func NewService(deduper *Deduper, feed *FeedClient, spotsRepo *spots.Repository) *Service {
	return &Service{deduper: deduper, feed: feed, spotsRepo: spotsRepo}
}

// Reconcile сверяет переданных кандидатов с текущими точками
// и возвращает только новые.
func (s *Service) Reconcile(ctx context.Context, candidates []Candidate) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	existing, err := s.spotsRepo.ListVisible(ctx, common.GetDhakaDate())
	if err != nil {
		return nil, err
	}

	novel := s.deduper.Reconcile(candidates, existing)
	metrics.LandmarkSuggestionsTotal.Add(float64(len(novel)))
	return novel, nil
}

// Suggest запрашивает фид по рамке и возвращает кандидатов после
// дедупликации. Отказ фида — не ошибка операции: логируем и отдаём
// пустой список, синхронных повторов нет.
func (s *Service) Suggest(ctx context.Context, box BBox) ([]Candidate, error) {
	candidates, err := s.feed.Fetch(ctx, box)
	if err != nil {
		metrics.LandmarkFeedFailuresTotal.Inc()
		log.WithError(err).Warn("Фид ориентиров недоступен, предложений не будет")
		return nil, nil
	}
	return s.Reconcile(ctx, candidates)
}
