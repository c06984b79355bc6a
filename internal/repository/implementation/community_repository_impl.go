package implementation

import (
	"context"
	"errors"

	"wellness-be/internal/entity"
	"wellness-be/internal/mapper"
	"wellness-be/internal/model"
	"wellness-be/internal/repository/contract"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewCommunityRepository(db *gorm.DB) contract.CommunityRepository {
	return &CommunityRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *CommunityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommunityRepositoryImpl) Create(ctx context.Context, community *entity.Community) error {
	m := r.mapper.CommunityToModel(community)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*community = *r.mapper.CommunityToEntity(m)
	return nil
}

func (r *CommunityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Community, error) {
	var m model.Community
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CommunityToEntity(&m), nil
}

func (r *CommunityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Community, error) {
	var models []*model.Community
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Community, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CommunityToEntity(m)
	}
	return entities, nil
}

func (r *CommunityRepositoryImpl) IncrementMemberCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Community{}).
		Where("id = ?", id).
		UpdateColumn("member_count", gorm.Expr("member_count + ?", delta)).Error
}

type PostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &PostRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *PostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *entity.Post) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *entity.Post) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *PostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

func (r *PostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Post, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PostToEntity(m)
	}
	return entities, nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Post{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var counterColumns = map[string]bool{
	"likes_count":    true,
	"comments_count": true,
	"shares_count":   true,
}

func (r *PostRepositoryImpl) IncrementCounter(ctx context.Context, id uuid.UUID, column string, delta int) error {
	if !counterColumns[column] {
		return errors.New("unknown counter column: " + column)
	}
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewCommentRepository(db *gorm.DB) contract.CommentRepository {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *CommentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.CommentToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*comment = *r.mapper.CommentToEntity(m)
	return nil
}

func (r *CommentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	var models []*model.Comment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Comment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CommentToEntity(m)
	}
	return entities, nil
}

func (r *CommentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Comment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type PostLikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewPostLikeRepository(db *gorm.DB) contract.PostLikeRepository {
	return &PostLikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *PostLikeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PostLikeRepositoryImpl) Create(ctx context.Context, like *entity.PostLike) error {
	m := r.mapper.PostLikeToModel(like)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*like = *r.mapper.PostLikeToEntity(m)
	return nil
}

func (r *PostLikeRepositoryImpl) Delete(ctx context.Context, postId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postId, userId).
		Delete(&model.PostLike{}).Error
}

func (r *PostLikeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PostLike, error) {
	var m model.PostLike
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostLikeToEntity(&m), nil
}

func (r *PostLikeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PostLike, error) {
	var models []*model.PostLike
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PostLike, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PostLikeToEntity(m)
	}
	return entities, nil
}
