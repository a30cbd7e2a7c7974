package shared

// Asynq queue names and task types shared between the API and the worker.
const (
	QueueNotifications = "notifications"

	TypeNotificationSend = "notification:send"
)

// NotificationPayload is the task payload for a single user notification.
type NotificationPayload struct {
	UserID    string                 `json:"user_id"`
	EventKind string                 `json:"event_kind"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}
