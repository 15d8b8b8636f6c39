package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User Management ---

type AdminUserListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Role   string `query:"role"`
	Status string `query:"status"`
}

type AdminUserResponse struct {
	Id            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"email_verified"`
	SessionCount  int64     `json:"session_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending blocked"`
}

// --- Interview Oversight ---

type AdminSessionListRequest struct {
	UserId    uuid.UUID `query:"user_id"`
	Completed *bool     `query:"completed"`
	Page      int       `query:"page"`
	Limit     int       `query:"limit"`
}

type AdminSessionResponse struct {
	Id           uuid.UUID `json:"id"`
	OwnerId      uuid.UUID `json:"owner_id"`
	Role         string    `json:"role"`
	State        string    `json:"state"`
	CurrentLevel int       `json:"current_level"`
	TotalScore   float64   `json:"total_score"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- System Logs ---

// Log ids are MD5 hashes of the raw line, not UUIDs.
type LogListResponse struct {
	Id        string `json:"id"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
