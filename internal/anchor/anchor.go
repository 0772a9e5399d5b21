package anchor

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

// New возвращает якорь подтверждений: клиент внешнего реестра, если
// LEDGER_URL задан, иначе локальный псевдо-якорь
func New(cfg *config.Config, logger *logrus.Logger) service.VerificationAnchor {
	if cfg.LedgerURL != "" {
		return NewLedgerAnchor(cfg, logger)
	}
	logger.Info("Ledger URL is not configured, using local pseudo anchor")
	return &PseudoAnchor{}
}

// LedgerAnchor отправляет данные тревоги во внешний реестр и получает
// непрозрачную ссылку-подтверждение
type LedgerAnchor struct {
	httpClient *http.Client
	url        string
	logger     *logrus.Logger
}

// NewLedgerAnchor создает новый LedgerAnchor
func NewLedgerAnchor(cfg *config.Config, logger *logrus.Logger) *LedgerAnchor {
	return &LedgerAnchor{
		httpClient: &http.Client{
			Timeout: cfg.LedgerTimeout,
		},
		url:    cfg.LedgerURL,
		logger: logger,
	}
}

type anchorRequest struct {
	AlertID   string  `json:"alert_id"`
	Timestamp int64   `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type anchorResponse struct {
	Reference string `json:"reference"`
}

// Record регистрирует тревогу в реестре и возвращает ссылку
func (a *LedgerAnchor) Record(ctx context.Context, alert *models.Alert) (string, error) {
	payload, err := json.Marshal(anchorRequest{
		AlertID:   alert.ID.String(),
		Timestamp: alert.Timestamp,
		Latitude:  alert.Location.Latitude,
		Longitude: alert.Location.Longitude,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal anchor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create anchor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call ledger service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ledger service returned status %d", resp.StatusCode)
	}

	var result anchorResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode anchor response: %w", err)
	}
	if result.Reference == "" {
		return "", fmt.Errorf("ledger service returned an empty reference")
	}

	a.logger.WithField("reference", result.Reference).Debug("Alert anchored in ledger")
	return result.Reference, nil
}

// PseudoAnchor генерирует локальную случайную ссылку вместо обращения
// к внешнему реестру
type PseudoAnchor struct{}

// Record возвращает случайную hex-ссылку
func (a *PseudoAnchor) Record(_ context.Context, _ *models.Alert) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate pseudo reference: %w", err)
	}
	return "0x" + hex.EncodeToString(buf), nil
}
