package submissions

import (
	"encoding/json"
	"errors"
	"time"

	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/skills"
)

// ErrNotFound is returned when a submission does not exist.
var ErrNotFound = errors.New("submission not found")

// ErrInvalidInput is returned for invalid submission payloads.
var ErrInvalidInput = errors.New("invalid input")

// Submission is one evaluated resume upload with its full result.
type Submission struct {
	ID             string             `json:"id"`
	JobID          string             `json:"job_id,omitempty"`
	CandidateName  string             `json:"candidate_name,omitempty"`
	CandidateEmail string             `json:"candidate_email,omitempty"`
	FileName       string             `json:"file_name"`
	StorageKey     string             `json:"storage_key"`
	ExtractedText  string             `json:"extracted_text,omitempty"`
	Score          float64            `json:"score"`
	Feedback       string             `json:"feedback"`
	Method         scoring.Method     `json:"evaluation_method"`
	Breakdown      map[string]float64 `json:"breakdown,omitempty"`
	RelevantSkills []string           `json:"relevant_skills"`
	MissingSkills  []string           `json:"missing_skills"`
	OverallFit     skills.FitCategory `json:"overall_fit"`
	FitPercentage  float64            `json:"fit_percentage"`
	Assessment     json.RawMessage    `json:"assessment,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}
