package service

import "context"

// Message is one outbound notification.
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// MessageSender delivers messages to users. A nil error means the message was accepted.
type MessageSender interface {
	// Channel names the delivery channel recorded in notification history, e.g. "sms".
	Channel() string

	// Send delivers a single message
	Send(ctx context.Context, msg *Message) error

	// Close releases any resources held by the sender
	Close() error
}
