package configprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second, noopLogger{})
}

func TestGetVenueConfig_FullDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"rooms": [
				{"id": "boardroom", "name": "Boardroom", "pricing": {"perPerson": 20, "perRoom": 100, "rule": "higher"}}
			],
			"addOns": [
				{"id": "wifi", "pricing": {"model": "PER_PERSON", "amount": 5}},
				{"id": "projector", "pricingModel": "per_period", "price": "15", "periodUnit": "hour"}
			],
			"venueName": "ignored extra field"
		}`))
	})

	config, err := client.GetVenueConfig(context.Background())
	require.NoError(t, err)

	require.Len(t, config.Rooms, 1)
	assert.Equal(t, "boardroom", config.Rooms[0].ID)
	require.NotNil(t, config.Rooms[0].Pricing)

	require.Len(t, config.AddOns, 2)
	assert.Equal(t, "projector", config.AddOns[1].ID)
	// Legacy-поля доезжают до записи и разрешаются движком цен
	assert.Equal(t, "per_period", config.AddOns[1].PricingModel)
}

func TestGetVenueConfig_AbsentArraysTreatedAsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	config, err := client.GetVenueConfig(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, config.Rooms)
	assert.Empty(t, config.Rooms)
	assert.NotNil(t, config.AddOns)
	assert.Empty(t, config.AddOns)
}

func TestGetVenueConfig_Non200Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetVenueConfig(context.Background())
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestGetVenueConfig_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rooms": [`))
	})

	_, err := client.GetVenueConfig(context.Background())
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestGetVenueConfig_ProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // порт закрыт

	client := NewClient(server.URL, time.Second, noopLogger{})

	_, err := client.GetVenueConfig(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGetRoom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rooms": [{"id": "boardroom"}, {"id": "studio"}]}`))
	})

	room, err := client.GetRoom(context.Background(), "studio")
	require.NoError(t, err)
	assert.Equal(t, "studio", room.ID)

	_, err = client.GetRoom(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrRoomNotFound))
}

func TestListAddOns(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"addOns": [{"id": "wifi"}]}`))
	})

	addOns, err := client.ListAddOns(context.Background())
	require.NoError(t, err)
	require.Len(t, addOns, 1)
	assert.Equal(t, "wifi", addOns[0].ID)
}
