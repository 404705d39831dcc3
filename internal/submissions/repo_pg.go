package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/skills"
)

// PGRepo implements Repo using Postgres. Breakdown, skill lists and the AI
// assessment land in JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

const submissionColumns = `id, job_id, candidate_name, candidate_email, file_name, storage_key,
extracted_text, score, feedback, method, breakdown, relevant_skills, missing_skills,
assessment, overall_fit, fit_percentage, created_at`

// Create inserts a new submission.
func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	const query = `
INSERT INTO submissions (` + submissionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	breakdown, err := jsonbOrNil(sub.Breakdown)
	if err != nil {
		return fmt.Errorf("encode breakdown: %w", err)
	}
	relevant, err := jsonbOrNil(sub.RelevantSkills)
	if err != nil {
		return fmt.Errorf("encode relevant skills: %w", err)
	}
	missing, err := jsonbOrNil(sub.MissingSkills)
	if err != nil {
		return fmt.Errorf("encode missing skills: %w", err)
	}

	var assessment any
	if len(sub.Assessment) > 0 {
		assessment = []byte(sub.Assessment)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		sub.ID,
		nullString(sub.JobID),
		sub.CandidateName,
		sub.CandidateEmail,
		sub.FileName,
		sub.StorageKey,
		sub.ExtractedText,
		sub.Score,
		sub.Feedback,
		string(sub.Method),
		breakdown,
		relevant,
		missing,
		assessment,
		string(sub.OverallFit),
		sub.FitPercentage,
		sub.CreatedAt,
	)
	return err
}

// GetByID returns a submission by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	const query = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE id = $1`

	sub, err := scanSubmission(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, ErrNotFound
	}
	return sub, err
}

// List returns submissions newest first, optionally filtered by job.
func (r *PGRepo) List(ctx context.Context, jobID string, limit, offset int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT ` + submissionColumns + `
FROM submissions`
	args := []any{}
	if jobID != "" {
		query += `
WHERE job_id = $1`
		args = append(args, jobID)
	}
	query += fmt.Sprintf(`
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (Submission, error) {
	var (
		sub        Submission
		jobID      sql.NullString
		method     string
		overallFit string
		breakdown  []byte
		relevant   []byte
		missing    []byte
		assessment []byte
	)
	err := row.Scan(
		&sub.ID,
		&jobID,
		&sub.CandidateName,
		&sub.CandidateEmail,
		&sub.FileName,
		&sub.StorageKey,
		&sub.ExtractedText,
		&sub.Score,
		&sub.Feedback,
		&method,
		&breakdown,
		&relevant,
		&missing,
		&assessment,
		&overallFit,
		&sub.FitPercentage,
		&sub.CreatedAt,
	)
	if err != nil {
		return Submission{}, err
	}

	sub.JobID = jobID.String
	sub.Method = scoring.Method(method)
	sub.OverallFit = skills.FitCategory(overallFit)
	sub.RelevantSkills = []string{}
	sub.MissingSkills = []string{}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &sub.Breakdown); err != nil {
			return Submission{}, fmt.Errorf("decode breakdown: %w", err)
		}
	}
	if len(relevant) > 0 {
		if err := json.Unmarshal(relevant, &sub.RelevantSkills); err != nil {
			return Submission{}, fmt.Errorf("decode relevant skills: %w", err)
		}
	}
	if len(missing) > 0 {
		if err := json.Unmarshal(missing, &sub.MissingSkills); err != nil {
			return Submission{}, fmt.Errorf("decode missing skills: %w", err)
		}
	}
	if len(assessment) > 0 {
		sub.Assessment = json.RawMessage(assessment)
	}
	return sub, nil
}

func jsonbOrNil(v any) (any, error) {
	switch t := v.(type) {
	case map[string]float64:
		if len(t) == 0 {
			return nil, nil
		}
	case []string:
		if t == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
