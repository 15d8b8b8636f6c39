package unitofwork

import (
	"context"

	"interview-prep-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	ResumeRepository() contract.ResumeRepository
	CourseRepository() contract.CourseRepository
	EnrollmentRepository() contract.EnrollmentRepository
	InterviewSessionRepository() contract.InterviewSessionRepository
}
