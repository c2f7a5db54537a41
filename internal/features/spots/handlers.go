// Package spots — handlers.go принимает HTTP-запросы списка и создания точек.
package spots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
	"reliefmap/internal/geo"
)

// Handler обрабатывает HTTP-запросы точек раздачи.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик точек.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List — GET /api/locations?date=ГГГГ-ММ-ДД&lat=&lng=
// Без date берётся сегодняшний день Дакки. lat/lng — координаты клиента
// для аннотации расстояния (опционально, оба сразу).
func (h *Handler) List(c *gin.Context) {
	refDate := common.GetDhakaDate()
	if raw := c.Query("date"); raw != "" {
		parsed, err := common.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		refDate = parsed
	}

	var viewer *geo.Point
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lng, errLng := strconv.ParseFloat(lngRaw, 64)
		if errLat == nil && errLng == nil {
			viewer = &geo.Point{Lat: lat, Lng: lng}
		}
	}

	views, err := h.service.List(c.Request.Context(), refDate, viewer)
	if err != nil {
		log.WithError(err).Error("Ошибка выборки точек")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": views})
}

// Create — POST /api/locations
func (h *Handler) Create(c *gin.Context) {
	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}

	spot, err := h.service.Create(c.Request.Context(), &draft)
	switch {
	case errors.Is(err, common.ErrEmptyName),
		errors.Is(err, common.ErrMissingCoordinates),
		errors.Is(err, common.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.WithError(err).Error("Ошибка создания точки")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":   spot.ID,
		"area": spot.Area,
		"date": common.FormatDay(spot.Date),
	})
}
