package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/internal/repository/unitofwork"
	"interview-prep-be/pkg/interview"
)

type IAdminService interface {
	ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]*dto.AdminUserResponse, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateUserStatusRequest) error
	ListSessions(ctx context.Context, req *dto.AdminSessionListRequest) ([]*dto.AdminSessionResponse, error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error)
	GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, limit := normalizePage(req.Page, req.Limit)
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	}
	if req.Role != "" {
		specs = append(specs, specification.Filter("role", req.Role))
	}
	if req.Status != "" {
		specs = append(specs, specification.Filter("status", req.Status))
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	sessionRepo := uow.InterviewSessionRepository()
	result := make([]*dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		count, err := sessionRepo.CountByUser(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.AdminUserResponse{
			Id:            user.Id,
			Email:         user.Email,
			FullName:      user.FullName,
			Role:          string(user.Role),
			Status:        string(user.Status),
			EmailVerified: user.EmailVerified,
			SessionCount:  count,
			CreatedAt:     user.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	user.Status = entity.UserStatus(req.Status)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("AdminService", "User status updated", map[string]interface{}{
		"user_id": userId,
		"status":  req.Status,
	})
	return nil
}

func (s *adminService) ListSessions(ctx context.Context, req *dto.AdminSessionListRequest) ([]*dto.AdminSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, limit := normalizePage(req.Page, req.Limit)
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	}
	if req.UserId != uuid.Nil {
		specs = append(specs, specification.OwnedBy{OwnerID: req.UserId})
	}
	if req.Completed != nil {
		specs = append(specs, specification.Completed{Value: *req.Completed})
	}

	sessions, err := uow.InterviewSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, toAdminSessionResponse(session))
	}
	return result, nil
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]dto.LogListResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toLogListResponse(entry))
	}
	return result, nil
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("log entry not found")
	}
	return &dto.LogDetailResponse{
		LogListResponse: toLogListResponse(*entry),
		Details:         entry.Details,
	}, nil
}

func toAdminSessionResponse(session *interview.Session) *dto.AdminSessionResponse {
	return &dto.AdminSessionResponse{
		Id:           session.Id,
		OwnerId:      session.OwnerId,
		Role:         session.Context.Role,
		State:        string(session.State()),
		CurrentLevel: session.CurrentLevel,
		TotalScore:   session.TotalScore,
		IsCompleted:  session.IsCompleted,
		CreatedAt:    session.CreatedAt,
	}
}

func toLogListResponse(entry logger.LogEntry) dto.LogListResponse {
	return dto.LogListResponse{
		Id:        entry.Id,
		Level:     entry.Level,
		Module:    entry.Module,
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
	}
}
