package service

import (
	"context"
)

// ShopEvent represents an event to be processed by the geo worker
type ShopEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	Topic         string  `json:"topic"`
	ShopID        string  `json:"shop_id"`
	Address       string  `json:"address,omitempty"`
	Rating        int     `json:"rating,omitempty"`
	AverageRating float64 `json:"average_rating,omitempty"`
	RatingsCount  int     `json:"ratings_count,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a shop event for async processing
	Publish(ctx context.Context, event *ShopEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
