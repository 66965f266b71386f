// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on published plan events.
const (
	AttributePlanID    = "plan_id"
	AttributeUserID    = "user_id"
	AttributeRequestID = "request_id"
	AttributeEventType = "event_type"
)

// EventTypePlanGenerated tags events announcing a stored meal plan.
const EventTypePlanGenerated = "meal_plan.generated"

// EnvLocal is the env.env value of local development, where push requests are not verified.
const EnvLocal = "local"
