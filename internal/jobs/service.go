package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for jobs.
type Service struct {
	Repo Repo
}

// CreateInput captures the fields accepted when posting a job.
type CreateInput struct {
	Title          string
	Company        string
	Description    string
	Location       string
	Type           string
	RequiredSkills string
}

// Create validates the input and stores a new job.
func (s *Service) Create(ctx context.Context, in CreateInput) (Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return Job{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	company := strings.TrimSpace(in.Company)
	if company == "" {
		company = "Company Name"
	}
	jobType := strings.TrimSpace(in.Type)
	if jobType == "" {
		jobType = "Full-time"
	}
	if !ValidType(jobType) {
		return Job{}, fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, jobType)
	}

	job := Job{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		Company:        company,
		Description:    in.Description,
		Location:       strings.TrimSpace(in.Location),
		Type:           jobType,
		RequiredSkills: strings.TrimSpace(in.RequiredSkills),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return Job{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, jobID)
}

// List returns jobs newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.Repo.List(ctx, limit, offset)
}
