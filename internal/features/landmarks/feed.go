// Package landmarks — feed.go ходит во внешний фид ориентиров.
// Фид — внешний сотрудник с ограниченным таймаутом: его отказ
// деградирует до пустого списка и никогда не роняет операцию.
package landmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FeedClient запрашивает кандидатов по географической рамке.
type FeedClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewFeedClient создаёт клиент фида. Пустой baseURL — фид отключён,
// Fetch всегда возвращает пустой список.
func NewFeedClient(baseURL string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Enabled — настроен ли внешний фид.
func (c *FeedClient) Enabled() bool {
	return c.baseURL != ""
}

// Fetch запрашивает кандидатов в рамке. По истечении таймаута запрос
// бросается, не повторяется. Формат ответа:
//
//	{"landmarks": [{"id": "...", "lat": 23.81, "lng": 90.41, "name": "..."}]}
func (c *FeedClient) Fetch(ctx context.Context, box BBox) ([]Candidate, error) {
	if !c.Enabled() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("min_lat", strconv.FormatFloat(box.MinLat, 'f', -1, 64))
	q.Set("min_lng", strconv.FormatFloat(box.MinLng, 'f', -1, 64))
	q.Set("max_lat", strconv.FormatFloat(box.MaxLat, 'f', -1, 64))
	q.Set("max_lng", strconv.FormatFloat(box.MaxLng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования запроса к фиду: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("фид ориентиров недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("фид ориентиров вернул статус %d", resp.StatusCode)
	}

	var payload struct {
		Landmarks []Candidate `json:"landmarks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа фида: %w", err)
	}
	return payload.Landmarks, nil
}
