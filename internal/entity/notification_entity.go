package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypePostLiked     NotificationType = "post_liked"
	NotificationTypePostCommented NotificationType = "post_commented"
	NotificationTypeWelcome       NotificationType = "welcome"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
