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

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	GetCandidateProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateCandidateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) GetCandidateProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	return toProfileResponse(profile), nil
}

func (s *userService) UpdateCandidateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := &entity.CandidateProfile{
		Id:              uuid.New(),
		UserId:          userId,
		Headline:        req.Headline,
		TargetRole:      req.TargetRole,
		TargetCompany:   req.TargetCompany,
		ExperienceLevel: req.ExperienceLevel,
		Skills:          req.Skills,
		FocusAreas:      req.FocusAreas,
		CreatedAt:       time.Now(),
	}
	if err := uow.ProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *entity.CandidateProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:              profile.Id,
		Headline:        profile.Headline,
		TargetRole:      profile.TargetRole,
		TargetCompany:   profile.TargetCompany,
		ExperienceLevel: profile.ExperienceLevel,
		Skills:          profile.Skills,
		FocusAreas:      profile.FocusAreas,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}
