package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// EmailNotifier отправляет уведомление одному получателю через почтовый
// relay API. Каждый вызов независим, порядок доставки не гарантируется.
type EmailNotifier struct {
	httpClient *http.Client
	url        string
	secret     string
	logger     *logrus.Logger
}

// NewEmailNotifier создает новый EmailNotifier
func NewEmailNotifier(cfg *config.Config, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{
		httpClient: &http.Client{
			Timeout: cfg.NotifyTimeout,
		},
		url:    cfg.NotifyURL,
		secret: cfg.NotifySecret,
		logger: logger,
	}
}

// alertEmail - тело письма для relay API
type alertEmail struct {
	To         string  `json:"to"`
	SenderName string  `json:"sender_name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	Timestamp  int64   `json:"timestamp"`
}

// Notify отправляет одно SOS-уведомление на адрес получателя
func (n *EmailNotifier) Notify(ctx context.Context, recipient, senderName string, location models.GeoLocation, timestamp int64) error {
	payload, err := json.Marshal(alertEmail{
		To:         recipient,
		SenderName: senderName,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Address:    location.Address,
		Timestamp:  timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create alert email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если NOTIFY_SECRET задан
	if n.secret != "" {
		req.Header.Set("X-Notify-Signature", signPayload(payload, n.secret))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email relay returned status %d", resp.StatusCode)
	}

	n.logger.WithField("recipient", recipient).Debug("Alert email accepted by relay")
	return nil
}

// signPayload генерирует HMAC-SHA256 подпись для данных
func signPayload(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
