package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/model"
)

type ResumeMapper struct{}

func NewResumeMapper() *ResumeMapper {
	return &ResumeMapper{}
}

func (m *ResumeMapper) ToEntity(r *model.Resume) *entity.Resume {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	experiences := make([]entity.ResumeExperience, 0)
	if len(r.Experiences) > 0 {
		_ = json.Unmarshal(r.Experiences, &experiences)
	}

	return &entity.Resume{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		Summary:     r.Summary,
		Skills:      jsonToStrings(r.Skills),
		Experiences: experiences,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ResumeMapper) ToModel(r *entity.Resume) *model.Resume {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	experiences := r.Experiences
	if experiences == nil {
		experiences = []entity.ResumeExperience{}
	}
	expJson, _ := json.Marshal(experiences)

	return &model.Resume{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		Summary:     r.Summary,
		Skills:      stringsToJSON(r.Skills),
		Experiences: datatypes.JSON(expJson),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ResumeMapper) ToEntities(resumes []*model.Resume) []*entity.Resume {
	entities := make([]*entity.Resume, len(resumes))
	for i, r := range resumes {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
