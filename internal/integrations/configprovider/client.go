package configprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним Config Provider
//
// Config Provider отдает документ {rooms, addOns} одним GET запросом.
// Клиент реализует контракт ConfigSource quote use case'ов, поэтому обе
// витрины могут считать цены по внешней конфигурации вместо локальной базы
type Client struct {
	configURL  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Config Provider
func NewClient(configURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		configURL: configURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVenueConfig получает документ конфигурации площадки
// Отсутствующие массивы rooms/addOns трактуются как пустые
func (c *Client) GetVenueConfig(ctx context.Context) (*VenueConfig, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.configURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ConfigProvider unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var config VenueConfig
	if err := json.NewDecoder(resp.Body).Decode(&config); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Отсутствующие массивы -> пустые, чтобы потребителям не думать о nil
	if config.Rooms == nil {
		config.Rooms = []*domain.Room{}
	}
	if config.AddOns == nil {
		config.AddOns = []*domain.AddOn{}
	}

	return &config, nil
}

// GetRoom получает комнату из документа конфигурации по ID
func (c *Client) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	config, err := c.GetVenueConfig(ctx)
	if err != nil {
		return nil, err
	}

	for _, room := range config.Rooms {
		if room != nil && room.ID == roomID {
			return room, nil
		}
	}

	c.log.Warn("ConfigProvider: room id=%s not found in venue config", roomID)
	return nil, domain.ErrRoomNotFound
}

// ListAddOns получает каталог add-on'ов из документа конфигурации
func (c *Client) ListAddOns(ctx context.Context) ([]*domain.AddOn, error) {
	config, err := c.GetVenueConfig(ctx)
	if err != nil {
		return nil, err
	}
	return config.AddOns, nil
}
