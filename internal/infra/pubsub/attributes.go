package pubsub

import (
	"mealplan/internal/domain/constants"
	"mealplan/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *service.PlanGeneratedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeEventType: constants.EventTypePlanGenerated,
		constants.AttributePlanID:    event.PlanID,
		constants.AttributeUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
