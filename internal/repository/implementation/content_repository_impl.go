package implementation

import (
	"context"
	"errors"

	"wellness-be/internal/entity"
	"wellness-be/internal/mapper"
	"wellness-be/internal/model"
	"wellness-be/internal/repository/contract"
	"wellness-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ExerciseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewExerciseRepository(db *gorm.DB) contract.ExerciseRepository {
	return &ExerciseRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ExerciseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExerciseRepositoryImpl) Create(ctx context.Context, exercise *entity.Exercise) error {
	m := r.mapper.ExerciseToModel(exercise)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exercise = *r.mapper.ExerciseToEntity(m)
	return nil
}

func (r *ExerciseRepositoryImpl) Update(ctx context.Context, exercise *entity.Exercise) error {
	m := r.mapper.ExerciseToModel(exercise)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*exercise = *r.mapper.ExerciseToEntity(m)
	return nil
}

func (r *ExerciseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exercise, error) {
	var m model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExerciseToEntity(&m), nil
}

func (r *ExerciseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error) {
	var models []*model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Exercise, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExerciseToEntity(m)
	}
	return entities, nil
}

func (r *ExerciseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Exercise{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type VideoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewVideoRepository(db *gorm.DB) contract.VideoRepository {
	return &VideoRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *VideoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VideoRepositoryImpl) Create(ctx context.Context, video *entity.Video) error {
	m := r.mapper.VideoToModel(video)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*video = *r.mapper.VideoToEntity(m)
	return nil
}

func (r *VideoRepositoryImpl) Update(ctx context.Context, video *entity.Video) error {
	m := r.mapper.VideoToModel(video)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*video = *r.mapper.VideoToEntity(m)
	return nil
}

func (r *VideoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Video, error) {
	var m model.Video
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VideoToEntity(&m), nil
}

func (r *VideoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Video, error) {
	var models []*model.Video
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Video, len(models))
	for i, m := range models {
		entities[i] = r.mapper.VideoToEntity(m)
	}
	return entities, nil
}

func (r *VideoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Video{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
