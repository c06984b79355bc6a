package mapper

import (
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/model"

	"gorm.io/gorm"
)

type CommunityMapper struct{}

func NewCommunityMapper() *CommunityMapper {
	return &CommunityMapper{}
}

func (m *CommunityMapper) CommunityToEntity(c *model.Community) *entity.Community {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Community{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		MemberCount: c.MemberCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CommunityMapper) CommunityToModel(c *entity.Community) *model.Community {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Community{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		MemberCount: c.MemberCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CommunityMapper) PostToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Post{
		Id:            p.Id,
		CommunityId:   p.CommunityId,
		UserId:        p.UserId,
		Content:       p.Content,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     p.DeletedAt.Valid,
	}
}

func (m *CommunityMapper) PostToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Post{
		Id:            p.Id,
		CommunityId:   p.CommunityId,
		UserId:        p.UserId,
		Content:       p.Content,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *CommunityMapper) CommentToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}

	return &entity.Comment{
		Id:        c.Id,
		PostId:    c.PostId,
		UserId:    c.UserId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommunityMapper) CommentToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}

	return &model.Comment{
		Id:        c.Id,
		PostId:    c.PostId,
		UserId:    c.UserId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommunityMapper) PostLikeToEntity(l *model.PostLike) *entity.PostLike {
	if l == nil {
		return nil
	}

	return &entity.PostLike{
		Id:        l.Id,
		PostId:    l.PostId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *CommunityMapper) PostLikeToModel(l *entity.PostLike) *model.PostLike {
	if l == nil {
		return nil
	}

	return &model.PostLike{
		Id:        l.Id,
		PostId:    l.PostId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
	}
}
