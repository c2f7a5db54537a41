// Package admin — handlers.go принимает админ-запросы.
package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
	"reliefmap/internal/features/spots"
)

// Handler обрабатывает админ-запросы.
type Handler struct {
	service     *Service
	spotService *spots.Service
}

// NewHandler создаёт обработчик админки.
func NewHandler(service *Service, spotService *spots.Service) *Handler {
	return &Handler{service: service, spotService: spotService}
}

// RemoveSpot — DELETE /api/admin/locations/:id
// Пароль в заголовке X-Admin-Password.
func (h *Handler) RemoveSpot(c *gin.Context) {
	password := c.GetHeader("X-Admin-Password")
	err := h.service.Verify(c.ClientIP(), password)
	switch {
	case errors.Is(err, common.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		return
	case errors.Is(err, common.ErrWrongPassword):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	err = h.spotService.ForceRemove(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, common.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.WithError(err).Error("Ошибка принудительного удаления")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
