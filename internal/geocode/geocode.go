// Package geocode — клиент обратного геокодирования: координаты → название района.
// Внешний сотрудник best-effort: ограниченный таймаут, кеш в Redis,
// при любом сбое — метка по умолчанию. Ошибок наружу нет в принципе —
// создание точки от геокодера не зависит.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/metrics"
)

// Client — обратный геокодер с кешем.
type Client struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	rdb      *redis.Client // nil — кеш отключён
	cacheTTL time.Duration
	fallback string
}

// New создаёт клиент геокодера. Пустой baseURL — геокодер отключён,
// ResolveArea всегда возвращает fallback. rdb может быть nil.
func New(baseURL string, timeout time.Duration, rdb *redis.Client, cacheTTL time.Duration, fallback string) *Client {
	return &Client{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		fallback: fallback,
	}
}

// cacheKey — ключ кеша с координатами, обрезанными до 3 знаков (~110 м).
// Соседние запросы из одного квартала попадают в одну запись.
func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("revgeo:%.3f:%.3f", lat, lng)
}

type cachedArea struct {
	Area string `json:"area"`
}

// ResolveArea возвращает название района для координат.
// Порядок: кеш → внешний геокодер → метка по умолчанию.
func (c *Client) ResolveArea(ctx context.Context, lat, lng float64) string {
	if c.baseURL == "" {
		return c.fallback
	}

	key := cacheKey(lat, lng)
	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, key).Result(); err == nil && raw != "" {
			var cached cachedArea
			if json.Unmarshal([]byte(raw), &cached) == nil && cached.Area != "" {
				metrics.GeocodeCacheHitsTotal.Inc()
				return cached.Area
			}
		}
		metrics.GeocodeCacheMissesTotal.Inc()
	}

	area, err := c.lookup(ctx, lat, lng)
	if err != nil {
		metrics.GeocodeFailuresTotal.Inc()
		log.WithError(err).WithFields(log.Fields{
			"lat": lat,
			"lng": lng,
		}).Warn("Геокодер недоступен, используем метку по умолчанию")
		return c.fallback
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(cachedArea{Area: area}); err == nil {
			// Сбой записи в кеш не важен: в следующий раз спросим ещё раз
			_ = c.rdb.Set(ctx, key, raw, c.cacheTTL).Err()
		}
	}
	return area
}

// lookup делает один HTTP-запрос к геокодеру. Формат ответа:
//
//	{"area": "Mirpur-10"}  (допускается и поле display_name)
func (c *Client) lookup(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("ошибка формирования запроса: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("запрос к геокодеру: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("геокодер вернул статус %d", resp.StatusCode)
	}

	var payload struct {
		Area        string `json:"area"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("ошибка разбора ответа геокодера: %w", err)
	}

	if payload.Area != "" {
		return payload.Area, nil
	}
	if payload.DisplayName != "" {
		return payload.DisplayName, nil
	}
	return "", fmt.Errorf("геокодер вернул пустой район")
}
