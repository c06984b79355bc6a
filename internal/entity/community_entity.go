package entity

import (
	"time"

	"github.com/google/uuid"
)

type Community struct {
	Id          uuid.UUID
	Name        string
	Description string
	MemberCount int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Post struct {
	Id            uuid.UUID
	CommunityId   uuid.UUID
	UserId        uuid.UUID
	Content       string
	LikesCount    int
	CommentsCount int
	SharesCount   int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

type Comment struct {
	Id        uuid.UUID
	PostId    uuid.UUID
	UserId    uuid.UUID
	Content   string
	CreatedAt time.Time
}

type PostLike struct {
	Id        uuid.UUID
	PostId    uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
