// Package landmarks — handlers.go принимает HTTP-запросы сверки ориентиров.
package landmarks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Handler обрабатывает HTTP-запросы ориентиров.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик ориентиров.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type reconcileRequest struct {
	Candidates []Candidate `json:"candidates"`
}

// Reconcile — POST /api/landmarks/reconcile
// Клиент сам добыл кандидатов, мы только фильтруем дубликаты.
func (h *Handler) Reconcile(c *gin.Context) {
	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}

	novel, err := h.service.Reconcile(c.Request.Context(), req.Candidates)
	if err != nil {
		log.WithError(err).Error("Ошибка сверки ориентиров")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": emptyIfNil(novel)})
}

// Suggest — GET /api/landmarks?min_lat=&min_lng=&max_lat=&max_lng=
// Фид запрашивается на стороне сервера; его отказ — пустой список, не ошибка.
func (h *Handler) Suggest(c *gin.Context) {
	box, ok := parseBBox(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректная рамка: нужны min_lat, min_lng, max_lat, max_lng"})
		return
	}

	novel, err := h.service.Suggest(c.Request.Context(), box)
	if err != nil {
		log.WithError(err).Error("Ошибка получения предложений")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": emptyIfNil(novel)})
}

func parseBBox(c *gin.Context) (BBox, bool) {
	parse := func(name string) (float64, bool) {
		v, err := strconv.ParseFloat(c.Query(name), 64)
		return v, err == nil
	}
	var box BBox
	var ok bool
	if box.MinLat, ok = parse("min_lat"); !ok {
		return box, false
	}
	if box.MinLng, ok = parse("min_lng"); !ok {
		return box, false
	}
	if box.MaxLat, ok = parse("max_lat"); !ok {
		return box, false
	}
	if box.MaxLng, ok = parse("max_lng"); !ok {
		return box, false
	}
	return box, true
}

// emptyIfNil — чтобы в JSON всегда был массив, а не null.
func emptyIfNil(list []Candidate) []Candidate {
	if list == nil {
		return []Candidate{}
	}
	return list
}
