package notification

import (
	"context"
	"log/slog"

	"campwatch/config"
	"campwatch/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// ChannelPush is recorded in history for Firebase deliveries.
const ChannelPush = "push"

// messagingClient is the subset of the Firebase messaging client the sender uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseSender publishes messages to a Firebase Cloud Messaging topic
type firebaseSender struct {
	client messagingClient
	topic  string
	logger *slog.Logger
}

// NewFirebaseSender creates a new Firebase topic sender
func NewFirebaseSender(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.MessageSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseSender(client, cfg.Topic, logger), nil
}

func newFirebaseSender(client messagingClient, topic string, logger *slog.Logger) *firebaseSender {
	return &firebaseSender{
		client: client,
		topic:  topic,
		logger: logger,
	}
}

func (s *firebaseSender) Channel() string {
	return ChannelPush
}

// Send publishes the message to the topic; the recipient travels in the data payload
func (s *firebaseSender) Send(ctx context.Context, msg *service.Message) error {
	if msg == nil || msg.To == "" {
		return errors.New("message recipient is required")
	}

	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["to"] = msg.To

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.InfoContext(ctx, "[Firebase] Message sent", slog.String("message_id", messageID))

	return nil
}

func (s *firebaseSender) Close() error {
	return nil
}
