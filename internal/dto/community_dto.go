package dto

import (
	"time"

	"github.com/google/uuid"
)

type CommunityResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
}

type CreatePostRequest struct {
	CommunityId uuid.UUID `json:"community_id" validate:"required"`
	Content     string    `json:"content" validate:"required,max=2000"`
}

type CreatePostResponse struct {
	Id uuid.UUID `json:"id"`
}

type PostResponse struct {
	Id            uuid.UUID `json:"id"`
	CommunityId   uuid.UUID `json:"community_id"`
	UserId        uuid.UUID `json:"user_id"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	SharesCount   int       `json:"shares_count"`
	LikedByMe     bool      `json:"liked_by_me"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListPostsRequest is bound from query parameters; sort defaults to newest.
type ListPostsRequest struct {
	CommunityId uuid.UUID
	Sort        string `query:"sort" validate:"omitempty,oneof=newest most_liked most_commented trending hot"`
	Page        int    `query:"page" validate:"omitempty,min=1"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type ListPostsResponse struct {
	Posts   []PostResponse `json:"posts"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	HasMore bool           `json:"has_more"`
}

type CreateCommentRequest struct {
	PostId  uuid.UUID
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentResponse struct {
	Id        uuid.UUID `json:"id"`
	PostId    uuid.UUID `json:"post_id"`
	UserId    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type LikePostResponse struct {
	PostId     uuid.UUID `json:"post_id"`
	Liked      bool      `json:"liked"`
	LikesCount int       `json:"likes_count"`
}
