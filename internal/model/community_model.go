package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Community struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	MemberCount int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Community) TableName() string {
	return "communities"
}

type Post struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CommunityId   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Content       string    `gorm:"type:text;not null"`
	LikesCount    int       `gorm:"default:0"`
	CommentsCount int       `gorm:"default:0"`
	SharesCount   int       `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

type PostLike struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
