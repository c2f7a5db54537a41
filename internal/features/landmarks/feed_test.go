package landmarks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedFetchDisabled(t *testing.T) {
	c := NewFeedClient("", time.Second)
	assert.False(t, c.Enabled())

	got, err := c.Fetch(context.Background(), BBox{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeedFetchParsesCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "23.7", q.Get("min_lat"))
		assert.Equal(t, "23.9", q.Get("max_lat"))
		w.Write([]byte(`{"landmarks": [
			{"id": "lm-1", "lat": 23.81, "lng": 90.41, "name": "Школа"},
			{"id": "lm-2", "lat": 23.82, "lng": 90.42, "name": "Мечеть"}
		]}`))
	}))
	defer srv.Close()

	c := NewFeedClient(srv.URL, time.Second)
	got, err := c.Fetch(context.Background(), BBox{MinLat: 23.7, MinLng: 90.3, MaxLat: 23.9, MaxLng: 90.5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "lm-1", got[0].ID)
	assert.Equal(t, "Мечеть", got[1].Name)
}

func TestFeedFetchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewFeedClient(srv.URL, time.Second)
	_, err := c.Fetch(context.Background(), BBox{})
	assert.Error(t, err)
}

func TestFeedFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	// Таймаут короче задержки сервера: запрос бросается, не повторяется
	c := NewFeedClient(srv.URL, 50*time.Millisecond)
	_, err := c.Fetch(context.Background(), BBox{})
	assert.Error(t, err)
}
