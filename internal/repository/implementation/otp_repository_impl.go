package implementation

import (
	"context"
	"errors"
	"time"

	"wellness-be/internal/entity"
	"wellness-be/internal/mapper"
	"wellness-be/internal/model"
	"wellness-be/internal/repository/contract"
	"wellness-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OtpRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewOtpRepository(db *gorm.DB) contract.OtpRepository {
	return &OtpRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *OtpRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OtpRepositoryImpl) Create(ctx context.Context, otp *entity.Otp) error {
	m := r.mapper.OtpToModel(otp)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*otp = *r.mapper.OtpToEntity(m)
	return nil
}

func (r *OtpRepositoryImpl) Update(ctx context.Context, otp *entity.Otp) error {
	m := r.mapper.OtpToModel(otp)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*otp = *r.mapper.OtpToEntity(m)
	return nil
}

func (r *OtpRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Otp, error) {
	var m model.Otp
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.OtpToEntity(&m), nil
}

func (r *OtpRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Otp{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OtpRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.Otp{}).Error
}
