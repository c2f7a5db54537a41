// Package votes — handlers.go принимает HTTP-запрос голосования.
package votes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
)

// Handler обрабатывает HTTP-запросы голосования.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик голосов.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type castRequest struct {
	UserID    string `json:"user_id"`
	Direction string `json:"direction"`
}

// Cast — POST /api/locations/:id/vote
func (h *Handler) Cast(c *gin.Context) {
	var req castRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}

	direction, err := ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Cast(c.Request.Context(), c.Param("id"), req.UserID, direction)
	switch {
	case errors.Is(err, common.ErrEmptyUserID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, common.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, common.ErrVoteConflict):
		// Повторы исчерпаны — отдаём конфликт клиенту
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.WithError(err).Error("Ошибка голосования")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusOK, result)
}
