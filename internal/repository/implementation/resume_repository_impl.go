package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/mapper"
	"interview-prep-be/internal/model"
	"interview-prep-be/internal/repository/contract"
	"interview-prep-be/internal/repository/specification"
)

type ResumeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResumeMapper
}

func NewResumeRepository(db *gorm.DB) contract.ResumeRepository {
	return &ResumeRepositoryImpl{
		db:     db,
		mapper: mapper.NewResumeMapper(),
	}
}

func (r *ResumeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResumeRepositoryImpl) Create(ctx context.Context, resume *entity.Resume) error {
	m := r.mapper.ToModel(resume)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*resume = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResumeRepositoryImpl) Update(ctx context.Context, resume *entity.Resume) error {
	m := r.mapper.ToModel(resume)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*resume = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResumeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Resume{}, id).Error
}

func (r *ResumeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Resume, error) {
	var m model.Resume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ResumeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Resume, error) {
	var models []*model.Resume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
