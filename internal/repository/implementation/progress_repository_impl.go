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
	"gorm.io/gorm/clause"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) Create(ctx context.Context, progress *entity.UserProgress) error {
	m := r.mapper.ProgressToModel(progress)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ProgressToEntity(m)
	return nil
}

func (r *ProgressRepositoryImpl) Update(ctx context.Context, progress *entity.UserProgress) error {
	m := r.mapper.ProgressToModel(progress)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ProgressToEntity(m)
	return nil
}

func (r *ProgressRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProgress, error) {
	var m model.UserProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProgressToEntity(&m), nil
}

type CheckInRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewCheckInRepository(db *gorm.DB) contract.CheckInRepository {
	return &CheckInRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *CheckInRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckInRepositoryImpl) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	m := r.mapper.CheckInToModel(checkIn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*checkIn = *r.mapper.CheckInToEntity(m)
	return nil
}

// Upsert writes the week's check-in, overwriting mood and note when the user
// already checked in that week. The row id of the first write is kept.
func (r *CheckInRepositoryImpl) Upsert(ctx context.Context, checkIn *entity.CheckIn) error {
	m := r.mapper.CheckInToModel(checkIn)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "note", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	var saved model.CheckIn
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND week_number = ?", m.UserId, m.WeekNumber).
		First(&saved).Error
	if err != nil {
		return err
	}
	*checkIn = *r.mapper.CheckInToEntity(&saved)
	return nil
}

func (r *CheckInRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error) {
	var models []*model.CheckIn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CheckIn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CheckInToEntity(m)
	}
	return entities, nil
}

func (r *CheckInRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CheckIn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
