package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveAreaDisabled(t *testing.T) {
	// Без URL геокодер всегда отдаёт метку по умолчанию
	c := New("", time.Second, nil, time.Hour, "Unknown area")
	assert.Equal(t, "Unknown area", c.ResolveArea(context.Background(), 23.81, 90.41))
}

func TestResolveAreaFromUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lng"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"area": "Mirpur-10"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, time.Hour, "Unknown area")
	assert.Equal(t, "Mirpur-10", c.ResolveArea(context.Background(), 23.81, 90.41))
}

func TestResolveAreaDisplayNameFallbackField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "Dhanmondi, Dhaka"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, time.Hour, "Unknown area")
	assert.Equal(t, "Dhanmondi, Dhaka", c.ResolveArea(context.Background(), 23.75, 90.37))
}

func TestResolveAreaDegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, time.Hour, "Unknown area")
	assert.Equal(t, "Unknown area", c.ResolveArea(context.Background(), 23.81, 90.41))
}

func TestResolveAreaDegradesOnEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, time.Hour, "Unknown area")
	assert.Equal(t, "Unknown area", c.ResolveArea(context.Background(), 23.81, 90.41))
}

func TestCacheKeyTruncatesCoordinates(t *testing.T) {
	// Соседние координаты одного квартала дают один ключ
	assert.Equal(t, cacheKey(23.8101, 90.4104), cacheKey(23.8102, 90.4103))
	assert.NotEqual(t, cacheKey(23.81, 90.41), cacheKey(23.82, 90.41))
}
