package submissions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-evaluator/internal/extract"
	"resume-evaluator/internal/jobs"
	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/shared/storage/object"
	"resume-evaluator/internal/shared/telemetry"
	"resume-evaluator/internal/skills"
)

// storagePrefix is the object-store directory for uploaded resumes.
const storagePrefix = "resumes"

// Service runs the evaluation pipeline: store the upload, extract text,
// match skills against the job, score, persist.
type Service struct {
	Repo      Repo
	Jobs      jobs.Repo
	Store     object.ObjectStore
	Extractor *extract.Extractor
	Scorer    *scoring.Hybrid
}

// EvaluateInput carries one resume upload and its job context.
type EvaluateInput struct {
	JobID          string
	JobDescription string
	CandidateName  string
	CandidateEmail string
	FileName       string
	File           io.Reader
}

// Evaluate processes a resume upload end to end and returns the stored
// submission. The only caller-visible validation failure is a missing file;
// everything downstream degrades instead of erroring.
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (Submission, error) {
	if in.File == nil || strings.TrimSpace(in.FileName) == "" {
		return Submission{}, fmt.Errorf("%w: resume file not provided", ErrInvalidInput)
	}

	jobText := in.JobDescription
	requiredSkills := ""
	jobID := ""
	if in.JobID != "" {
		job, err := s.Jobs.GetByID(ctx, in.JobID)
		switch {
		case err == nil:
			jobID = job.ID
			jobText = job.Description
			requiredSkills = job.RequiredSkills
		case errors.Is(err, jobs.ErrNotFound):
			// An unknown job id is ignored; the free-text description
			// still drives the evaluation.
			telemetry.Warn("submission.job_missing", map[string]any{"job_id": in.JobID})
		default:
			return Submission{}, fmt.Errorf("resolve job: %w", err)
		}
	}

	data, err := io.ReadAll(in.File)
	if err != nil {
		return Submission{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, _, _, err := s.Store.Save(ctx, storagePrefix, in.FileName, bytes.NewReader(data))
	if err != nil {
		return Submission{}, fmt.Errorf("store upload: %w", err)
	}

	text := s.Extractor.Extract(ctx, data, in.FileName)
	match := skills.Evaluate(requiredSkills, text)
	eval := s.Scorer.Evaluate(ctx, text, jobText)

	sub := Submission{
		ID:             uuid.NewString(),
		JobID:          jobID,
		CandidateName:  strings.TrimSpace(in.CandidateName),
		CandidateEmail: strings.TrimSpace(in.CandidateEmail),
		FileName:       in.FileName,
		StorageKey:     storageKey,
		ExtractedText:  text,
		Score:          eval.Score,
		Feedback:       eval.Feedback,
		Method:         eval.Method,
		Breakdown:      eval.Breakdown,
		RelevantSkills: match.RelevantSkills,
		MissingSkills:  match.MissingSkills,
		OverallFit:     match.OverallFit,
		FitPercentage:  match.FitPercentage,
		Assessment:     eval.Assessment,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, sub); err != nil {
		return Submission{}, fmt.Errorf("create submission: %w", err)
	}

	telemetry.Info("submission.evaluated", map[string]any{
		"submission_id": sub.ID,
		"method":        string(sub.Method),
		"score":         sub.Score,
		"overall_fit":   string(sub.OverallFit),
	})
	return sub, nil
}

// Get returns a submission by ID.
func (s *Service) Get(ctx context.Context, id string) (Submission, error) {
	if strings.TrimSpace(id) == "" {
		return Submission{}, fmt.Errorf("%w: submission id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns submissions newest first, optionally filtered by job.
func (s *Service) List(ctx context.Context, jobID string, limit, offset int) ([]Submission, error) {
	return s.Repo.List(ctx, jobID, limit, offset)
}
