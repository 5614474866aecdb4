package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/entity"
	"campwatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPSender posts messages as JSON to a local SMS gateway, for development
type localHTTPSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// LocalMessage is the body posted to the local endpoint
type LocalMessage struct {
	MessageID string            `json:"message_id"`
	Channel   string            `json:"channel"`
	To        string            `json:"to"`
	Title     string            `json:"title,omitempty"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	SentAt    string            `json:"sent_at"`
}

// NewLocalHTTPSender creates a new local HTTP sender for development
func NewLocalHTTPSender(endpoint string, logger *slog.Logger) service.MessageSender {
	return &localHTTPSender{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (s *localHTTPSender) Channel() string {
	return entity.NotificationTypeSMS
}

// Send posts the message and treats any non-2xx status as a failure
func (s *localHTTPSender) Send(ctx context.Context, msg *service.Message) error {
	if msg == nil || msg.To == "" {
		return errors.New("message recipient is required")
	}

	payload := LocalMessage{
		MessageID: uuid.New().String(),
		Channel:   s.Channel(),
		To:        msg.To,
		Title:     msg.Title,
		Body:      msg.Body,
		Data:      msg.Data,
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	s.logger.InfoContext(ctx, "[LocalSender] Message delivered",
		slog.String("message_id", payload.MessageID),
		slog.String("endpoint", s.endpoint),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (s *localHTTPSender) Close() error {
	return nil
}
