package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCommunityID struct {
	CommunityID uuid.UUID
}

func (s ByCommunityID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("community_id = ?", s.CommunityID)
}

type ByPostID struct {
	PostID uuid.UUID
}

func (s ByPostID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("post_id = ?", s.PostID)
}

type ByPostIDs struct {
	PostIDs []uuid.UUID
}

func (s ByPostIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("post_id IN ?", s.PostIDs)
}
