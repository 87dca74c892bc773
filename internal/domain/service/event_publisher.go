package service

import (
	"context"
	"time"
)

// AlertCreatedEvent is published once per stored alert and triggers exactly one fanout
type AlertCreatedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID       string    `json:"alert_id"`
	SenderID      string    `json:"sender_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	LocationLabel string    `json:"location_label,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertCreated publishes an alert event for async fanout
	PublishAlertCreated(ctx context.Context, event *AlertCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
