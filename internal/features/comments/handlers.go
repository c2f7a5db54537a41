// Package comments — handlers.go принимает HTTP-запросы комментариев.
package comments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
)

// Handler обрабатывает HTTP-запросы комментариев.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик комментариев.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addRequest struct {
	Text string `json:"text"`
}

// Add — POST /api/locations/:id/comments
func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}

	comment, err := h.service.Add(c.Request.Context(), c.Param("id"), req.Text)
	switch {
	case errors.Is(err, common.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, common.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.WithError(err).Error("Ошибка добавления комментария")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List — GET /api/locations/:id/comments
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Error("Ошибка выборки комментариев")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": list})
}
