package pubsub

import "adchecker/internal/domain/service"

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.AccountEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"user_id":    event.UserID,
	}
	if event.Trigger != "" {
		attributes["trigger"] = event.Trigger
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
