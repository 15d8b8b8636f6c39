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

type ICourseService interface {
	ListPublished(ctx context.Context, track string) ([]*dto.CourseResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Enroll(ctx context.Context, userId uuid.UUID, courseId uuid.UUID) (*dto.EnrollmentResponse, error)
	Unenroll(ctx context.Context, userId uuid.UUID, courseId uuid.UUID) error
	ListEnrollments(ctx context.Context, userId uuid.UUID) ([]*dto.EnrollmentResponse, error)
}

type courseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory) ICourseService {
	return &courseService{
		uowFactory: uowFactory,
	}
}

func (s *courseService) ListPublished(ctx context.Context, track string) ([]*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.PublishedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if track != "" {
		specs = append(specs, specification.ByTrack{Track: track})
	}

	courses, err := uow.CourseRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, toCourseResponse(course))
	}
	return result, nil
}

func (s *courseService) Show(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course := &entity.Course{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Track:       req.Track,
		IsPublished: req.IsPublished,
		CreatedAt:   time.Now(),
	}
	if err := uow.CourseRepository().Create(ctx, course); err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.findCourse(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	course.Title = req.Title
	course.Description = req.Description
	course.Track = req.Track
	course.IsPublished = req.IsPublished
	if err := uow.CourseRepository().Update(ctx, course); err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findCourse(ctx, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CourseRepository().Delete(ctx, id)
}

func (s *courseService) Enroll(ctx context.Context, userId uuid.UUID, courseId uuid.UUID) (*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx,
		specification.ByID{ID: courseId},
		specification.PublishedOnly{},
	)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, errors.New("course not found")
	}

	existing, err := uow.EnrollmentRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("course_id", courseId),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("already enrolled")
	}

	enrollment := &entity.Enrollment{
		Id:         uuid.New(),
		UserId:     userId,
		CourseId:   courseId,
		EnrolledAt: time.Now(),
	}
	if err := uow.EnrollmentRepository().Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return &dto.EnrollmentResponse{
		Id:         enrollment.Id,
		CourseId:   courseId,
		Course:     toCourseResponse(course),
		EnrolledAt: enrollment.EnrolledAt,
	}, nil
}

func (s *courseService) Unenroll(ctx context.Context, userId uuid.UUID, courseId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollment, err := uow.EnrollmentRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("course_id", courseId),
	)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return errors.New("enrollment not found")
	}
	return uow.EnrollmentRepository().Delete(ctx, enrollment.Id)
}

func (s *courseService) ListEnrollments(ctx context.Context, userId uuid.UUID) ([]*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollments, err := uow.EnrollmentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "enrolled_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: enrollment.CourseId})
		if err != nil {
			return nil, err
		}
		res := &dto.EnrollmentResponse{
			Id:         enrollment.Id,
			CourseId:   enrollment.CourseId,
			EnrolledAt: enrollment.EnrolledAt,
		}
		if course != nil {
			res.Course = toCourseResponse(course)
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *courseService) findCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, errors.New("course not found")
	}
	return course, nil
}

func toCourseResponse(course *entity.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		Id:          course.Id,
		Title:       course.Title,
		Description: course.Description,
		Track:       course.Track,
		IsPublished: course.IsPublished,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}
