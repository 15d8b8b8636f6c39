package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.CandidateProfile) *entity.CandidateProfile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.CandidateProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		Headline:        p.Headline,
		TargetRole:      p.TargetRole,
		TargetCompany:   p.TargetCompany,
		ExperienceLevel: p.ExperienceLevel,
		Skills:          jsonToStrings(p.Skills),
		FocusAreas:      jsonToStrings(p.FocusAreas),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.CandidateProfile) *model.CandidateProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.CandidateProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		Headline:        p.Headline,
		TargetRole:      p.TargetRole,
		TargetCompany:   p.TargetCompany,
		ExperienceLevel: p.ExperienceLevel,
		Skills:          stringsToJSON(p.Skills),
		FocusAreas:      stringsToJSON(p.FocusAreas),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func jsonToStrings(raw datatypes.JSON) []string {
	values := make([]string, 0)
	if len(raw) == 0 {
		return values
	}
	// Column content is always a JSON string array; a broken value decodes to empty.
	_ = json.Unmarshal(raw, &values)
	return values
}

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
