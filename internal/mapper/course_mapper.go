package mapper

import (
	"time"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Course{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Track:       c.Track,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Course{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Track:       c.Track,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CourseMapper) ToEntities(courses []*model.Course) []*entity.Course {
	entities := make([]*entity.Course, len(courses))
	for i, c := range courses {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CourseMapper) EnrollmentToEntity(e *model.Enrollment) *entity.Enrollment {
	if e == nil {
		return nil
	}
	return &entity.Enrollment{
		Id:         e.Id,
		UserId:     e.UserId,
		CourseId:   e.CourseId,
		EnrolledAt: e.EnrolledAt,
	}
}

func (m *CourseMapper) EnrollmentToModel(e *entity.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	return &model.Enrollment{
		Id:         e.Id,
		UserId:     e.UserId,
		CourseId:   e.CourseId,
		EnrolledAt: e.EnrolledAt,
	}
}

func (m *CourseMapper) EnrollmentsToEntities(enrollments []*model.Enrollment) []*entity.Enrollment {
	entities := make([]*entity.Enrollment, len(enrollments))
	for i, e := range enrollments {
		entities[i] = m.EnrollmentToEntity(e)
	}
	return entities
}
