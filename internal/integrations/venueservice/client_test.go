package venueservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testVenues() []Venue {
	return []Venue{
		{ID: "v1", Name: "Quadra Azul", Color: "#2196F3", Type: "quadra"},
		{ID: "v2", Name: "Campo Verde", Color: "#4CAF50", Type: "campo"},
	}
}

func venueServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/internal/venues", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(testVenues()))
	})
	mux.HandleFunc("/internal/venues/v1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(testVenues()[0]))
	})
	mux.HandleFunc("/internal/venues/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func TestGetVenues(t *testing.T) {
	srv := venueServer(t)
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	venues, err := client.GetVenues(context.Background())
	require.NoError(t, err)

	require.Len(t, venues, 2)
	assert.Equal(t, "Quadra Azul", venues[0].Name)
	assert.Equal(t, "#4CAF50", venues[1].Color)
}

func TestGetVenue(t *testing.T) {
	srv := venueServer(t)
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	venue, err := client.GetVenue(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, "v1", venue.ID)
	assert.Equal(t, "quadra", venue.Type)
}

func TestGetVenueNotFound(t *testing.T) {
	srv := venueServer(t)
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	_, err := client.GetVenue(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetVenuesWithGracefulDegradation(t *testing.T) {
	srv := venueServer(t)

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})
	venues, err := client.GetVenuesWithGracefulDegradation(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 2)

	// После остановки сервиса деградация помечается сигнальной ошибкой
	srv.Close()
	_, err = client.GetVenuesWithGracefulDegradation(context.Background())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
