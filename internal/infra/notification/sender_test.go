package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campwatch/config"
	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMessageSender_SelectsProvider(t *testing.T) {
	tests := []struct {
		name        string
		delivery    *config.DeliveryConfig
		wantChannel string
		wantErr     bool
	}{
		{name: "unset defaults to log", delivery: nil, wantChannel: ChannelLog},
		{name: "explicit log", delivery: &config.DeliveryConfig{Provider: ProviderLog}, wantChannel: ChannelLog},
		{name: "local", delivery: &config.DeliveryConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9999"}, wantChannel: "sms"},
		{name: "local without endpoint", delivery: &config.DeliveryConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "pubsub without project", delivery: &config.DeliveryConfig{Provider: ProviderPubSub}, wantErr: true},
		{name: "firebase without topic", delivery: &config.DeliveryConfig{Provider: ProviderFirebase}, wantErr: true},
		{name: "unknown", delivery: &config.DeliveryConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			sender, err := NewMessageSender(SenderParams{
				Lc:     lc,
				Ctx:    t.Context(),
				Config: &config.Config{Delivery: tt.delivery},
				Logger: testLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantChannel, sender.Channel())
			lc.RequireStart().RequireStop()
		})
	}
}

func TestLogSender_RequiresRecipient(t *testing.T) {
	sender := NewLogSender(testLogger())

	assert.NoError(t, sender.Send(t.Context(), &service.Message{To: "+15550001111", Body: "hi"}))
	assert.Error(t, sender.Send(t.Context(), &service.Message{Body: "hi"}))
	assert.NoError(t, sender.Close())
}

func TestLocalHTTPSender_Send(t *testing.T) {
	var received LocalMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewLocalHTTPSender(server.URL, testLogger())
	ctx := deliverycontext.WithRequestID(t.Context(), "req-123")

	err := sender.Send(ctx, &service.Message{
		To:   "+15550001111",
		Body: "Test notification from Camply Web Interface",
		Data: map[string]string{"preference_id": "7"},
	})
	require.NoError(t, err)

	assert.Equal(t, "+15550001111", received.To)
	assert.Equal(t, "sms", received.Channel)
	assert.Equal(t, "Test notification from Camply Web Interface", received.Body)
	assert.Equal(t, "7", received.Data["preference_id"])
	assert.NotEmpty(t, received.MessageID)
	assert.Equal(t, "req-123", requestID)
}

func TestLocalHTTPSender_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sender := NewLocalHTTPSender(server.URL, testLogger())

	err := sender.Send(t.Context(), &service.Message{To: "+15550001111", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/demo/messages/1", nil
}

func TestFirebaseSender_Send(t *testing.T) {
	client := &fakeMessagingClient{}
	sender := newFirebaseSender(client, "campsite-alerts", testLogger())

	err := sender.Send(t.Context(), &service.Message{
		To:    "+15550001111",
		Title: "Campsite available",
		Body:  "Site A01 is open on 2025-07-01",
		Data:  map[string]string{"campground_id": "1001"},
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "campsite-alerts", msg.Topic)
	assert.Equal(t, "Campsite available", msg.Notification.Title)
	assert.Equal(t, "+15550001111", msg.Data["to"])
	assert.Equal(t, "1001", msg.Data["campground_id"])
	assert.Equal(t, ChannelPush, sender.Channel())
}

func TestFirebaseSender_SendError(t *testing.T) {
	sender := newFirebaseSender(&fakeMessagingClient{err: errors.New("quota exceeded")}, "topic", testLogger())

	err := sender.Send(t.Context(), &service.Message{To: "+15550001111", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
