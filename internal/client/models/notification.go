package models

type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp Timestamp      `json:"timestamp"`
	Read      bool           `json:"read"`
	Data      map[string]any `json:"data,omitempty"`
}

type UnreadCount struct {
	Count int `json:"count"`
}
