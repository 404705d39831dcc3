package jobs

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a job does not exist.
var ErrNotFound = errors.New("job not found")

// ErrInvalidInput is returned for invalid job payloads.
var ErrInvalidInput = errors.New("invalid input")

// JobTypes is the closed set of accepted employment types.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// Job represents a job posting candidates apply to.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	RequiredSkills string    `json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

// SkillsList splits the comma-separated required skills into a list.
func (j Job) SkillsList() []string {
	if strings.TrimSpace(j.RequiredSkills) == "" {
		return []string{}
	}
	parts := strings.Split(j.RequiredSkills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ValidType reports whether t is an accepted employment type.
func ValidType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}
