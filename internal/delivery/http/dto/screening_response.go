package dto

import (
	"time"

	"github.com/google/uuid"
)

type BreakdownResponse struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

type ScreeningResultResponse struct {
	ID              uuid.UUID         `json:"id"`
	JobID           uuid.UUID         `json:"job_id"`
	MatchedSkills   []string          `json:"matched_skills"`
	MissingSkills   []string          `json:"missing_skills"`
	Score           int               `json:"score"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type AuditEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	CreatedAt time.Time `json:"created_at"`
}

type AnalyzeOnlyResponse struct {
	MatchedSkills   []string          `json:"matched_skills"`
	MissingSkills   []string          `json:"missing_skills"`
	Score           int               `json:"score"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	Recommendations []string          `json:"recommendations"`
}
