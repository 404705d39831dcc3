package submissions

import "context"

// Repo defines persistence for submissions.
type Repo interface {
	Create(ctx context.Context, sub Submission) error
	GetByID(ctx context.Context, id string) (Submission, error)
	// List returns submissions newest first. An empty jobID matches all.
	List(ctx context.Context, jobID string, limit, offset int) ([]Submission, error)
}
