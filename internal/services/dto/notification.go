package dto

import "time"

type NotificationDTO struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedEntityType string     `json:"related_entity_type,omitempty"`
	RelatedEntityID   string     `json:"related_entity_id,omitempty"`
	IsRead            bool       `json:"is_read"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int64             `json:"total"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
