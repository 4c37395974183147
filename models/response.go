package models

// Notification is the payload for pushing a notification.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BroadcastRequest is the payload for pushing a notification to several groups.
type BroadcastRequest struct {
	GroupIDs []string `json:"groupIds"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
}

// NotificationCount reports how many notifications have been pushed to a user.
type NotificationCount struct {
	NotificationsPushed int `json:"numOfNotificationsPushed"`
}

// NotificationErrors collects per-recipient delivery failures from a fan-out.
type NotificationErrors struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	ErrorDetails string `json:"error_details"`
}
