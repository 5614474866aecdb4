// Package notification implements the outbound message senders.
package notification

import (
	"context"
	"log/slog"

	"campwatch/config"
	"campwatch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Delivery provider names accepted in delivery.provider.
const (
	ProviderLog      = "log"
	ProviderLocal    = "local"
	ProviderPubSub   = "pubsub"
	ProviderFirebase = "firebase"
)

// SenderParams holds dependencies for MessageSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMessageSender creates a MessageSender based on configuration
func NewMessageSender(params SenderParams) (service.MessageSender, error) {
	cfg := params.Config
	logger := params.Logger

	var sender service.MessageSender
	var err error

	provider := ""
	if cfg.Delivery != nil {
		provider = cfg.Delivery.Provider
	}

	switch provider {
	case "", ProviderLog:
		logger.Info("Delivery provider not configured, logging messages instead")

		sender = NewLogSender(logger)

	case ProviderLocal:
		if cfg.Delivery.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP sender",
			slog.String("endpoint", cfg.Delivery.LocalEndpoint),
		)

		sender = NewLocalHTTPSender(cfg.Delivery.LocalEndpoint, logger)

	case ProviderPubSub:
		if cfg.PubSub == nil || cfg.PubSub.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.PubSub.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		logger.Info("Using Google Pub/Sub sender",
			slog.String("project_id", cfg.PubSub.ProjectID),
			slog.String("topic_id", cfg.PubSub.TopicID),
		)

		sender, err = NewGooglePubSubSender(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderFirebase:
		if cfg.Firebase == nil || cfg.Firebase.Topic == "" {
			return nil, errors.New("firebase topic is required for firebase provider")
		}
		logger.Info("Using Firebase topic sender",
			slog.String("topic", cfg.Firebase.Topic),
		)

		sender, err = NewFirebaseSender(params.Ctx, cfg.Firebase, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown delivery provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MessageSender", slog.String("channel", sender.Channel()))

			return sender.Close()
		},
	})

	return sender, nil
}
