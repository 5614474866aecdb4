package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/entity"
	"campwatch/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubSender publishes messages to a topic consumed by the SMS gateway
type googlePubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubSender creates a new Google Pub/Sub sender
func NewGooglePubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MessageSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub sender initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (s *googlePubSubSender) Channel() string {
	return entity.NotificationTypeSMS
}

// Send publishes the message and waits for the server acknowledgement
func (s *googlePubSubSender) Send(ctx context.Context, msg *service.Message) error {
	if msg == nil || msg.To == "" {
		return errors.New("message recipient is required")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"channel": s.Channel(),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.logger.InfoContext(ctx, "[GooglePubSub] Message published",
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (s *googlePubSubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
