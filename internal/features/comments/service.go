// Package comments — service.go содержит бизнес-логику комментариев.
package comments

import (
	"context"
	"strings"

	"reliefmap/internal/common"
)

// Service управляет комментариями.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис комментариев.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Add добавляет комментарий. Пустой текст — ошибка валидации,
// несуществующая точка — ErrSpotNotFound (через внешний ключ).
func (s *Service) Add(ctx context.Context, spotID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyComment
	}
	return s.repo.Add(ctx, spotID, text)
}

// List возвращает комментарии точки, сначала самые новые.
func (s *Service) List(ctx context.Context, spotID string) ([]*Comment, error) {
	return s.repo.List(ctx, spotID)
}
