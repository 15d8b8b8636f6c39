package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/internal/repository/unitofwork"
)

type IResumeService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ResumeResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ResumeResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateResumeRequest) (*dto.ResumeResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type resumeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewResumeService(uowFactory unitofwork.RepositoryFactory) IResumeService {
	return &resumeService{
		uowFactory: uowFactory,
	}
}

func (s *resumeService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resumes, err := uow.ResumeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ResumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		result = append(result, toResumeResponse(resume))
	}
	return result, nil
}

func (s *resumeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ResumeResponse, error) {
	resume, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

func (s *resumeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateResumeRequest) (*dto.ResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resume := &entity.Resume{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Summary:     req.Summary,
		Skills:      req.Skills,
		Experiences: toResumeExperiences(req.Experiences),
		CreatedAt:   time.Now(),
	}
	if err := uow.ResumeRepository().Create(ctx, resume); err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

func (s *resumeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error) {
	resume, err := s.findOwned(ctx, userId, req.Id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume.Title = req.Title
	resume.Summary = req.Summary
	resume.Skills = req.Skills
	resume.Experiences = toResumeExperiences(req.Experiences)
	if err := uow.ResumeRepository().Update(ctx, resume); err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

func (s *resumeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, userId, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ResumeRepository().Delete(ctx, id)
}

func (s *resumeService) findOwned(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.Resume, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errors.New("resume not found")
	}
	return resume, nil
}

func toResumeExperiences(items []dto.ResumeExperienceDTO) []entity.ResumeExperience {
	experiences := make([]entity.ResumeExperience, 0, len(items))
	for _, item := range items {
		experiences = append(experiences, entity.ResumeExperience{
			Company:     item.Company,
			Title:       item.Title,
			StartYear:   item.StartYear,
			EndYear:     item.EndYear,
			Description: item.Description,
		})
	}
	return experiences
}

func toResumeResponse(resume *entity.Resume) *dto.ResumeResponse {
	experiences := make([]dto.ResumeExperienceDTO, 0, len(resume.Experiences))
	for _, exp := range resume.Experiences {
		experiences = append(experiences, dto.ResumeExperienceDTO{
			Company:     exp.Company,
			Title:       exp.Title,
			StartYear:   exp.StartYear,
			EndYear:     exp.EndYear,
			Description: exp.Description,
		})
	}
	return &dto.ResumeResponse{
		Id:          resume.Id,
		Title:       resume.Title,
		Summary:     resume.Summary,
		Skills:      resume.Skills,
		Experiences: experiences,
		CreatedAt:   resume.CreatedAt,
		UpdatedAt:   resume.UpdatedAt,
	}
}
