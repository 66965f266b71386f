package service

import (
	"context"
)

// PlanGeneratedEvent announces a meal plan that was generated and stored
type PlanGeneratedEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	PlanID       string  `json:"plan_id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	Mode         string  `json:"mode"`
	MealCount    int     `json:"meal_count"`
	Placeholders int     `json:"placeholders"`
	QualityScore float64 `json:"quality_score"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlanGeneratedEvent publishes a plan event for downstream consumers
	PublishPlanGeneratedEvent(ctx context.Context, event *PlanGeneratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
