package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// HTTPProvider получает координаты одним запросом к сервису геолокации.
// Одна попытка, без повторов и кеширования: отказ обрабатывает вызывающий.
type HTTPProvider struct {
	httpClient *http.Client
	url        string
	logger     *logrus.Logger
}

// NewHTTPProvider создает новый HTTPProvider
func NewHTTPProvider(cfg *config.Config, logger *logrus.Logger) *HTTPProvider {
	return &HTTPProvider{
		httpClient: &http.Client{
			Timeout: cfg.GeolocationTimeout,
		},
		url:    cfg.GeolocationURL,
		logger: logger,
	}
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// CurrentPosition возвращает одноразовое чтение координат
func (p *HTTPProvider) CurrentPosition(ctx context.Context) (models.GeoLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("failed to create geolocation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("failed to call geolocation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.GeoLocation{}, fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	var position positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&position); err != nil {
		return models.GeoLocation{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"latitude":  position.Latitude,
		"longitude": position.Longitude,
	}).Debug("Acquired current position")

	return models.GeoLocation{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
		Address:   position.Address,
	}, nil
}
