package submissions

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/skills"
)

func submissionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "job_id", "candidate_name", "candidate_email", "file_name", "storage_key",
		"extracted_text", "score", "feedback", "method", "breakdown", "relevant_skills",
		"missing_skills", "assessment", "overall_fit", "fit_percentage", "created_at",
	})
}

func TestPGRepoCreateSubmission(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	sub := Submission{
		ID:             "sub-1",
		JobID:          "job-1",
		FileName:       "resume.pdf",
		StorageKey:     "resumes/abc_resume.pdf",
		Score:          72.5,
		Feedback:       "ok",
		Method:         scoring.MethodHybrid,
		Breakdown:      map[string]float64{"heuristic": 70, "semantic": 76.25},
		RelevantSkills: []string{"python"},
		MissingSkills:  []string{"aws"},
		OverallFit:     skills.FitFair,
		FitPercentage:  50,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submissions")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), sub); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetSubmission(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := submissionRows().AddRow(
		"sub-1", nil, "Ada", "ada@example.com", "resume.pdf", "resumes/abc_resume.pdf",
		"text", 72.5, "ok", "hybrid", []byte(`{"heuristic":70}`), []byte(`["python"]`),
		[]byte(`["aws"]`), nil, "fair", 50.0, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM submissions")).
		WithArgs("sub-1").
		WillReturnRows(rows)

	sub, err := repo.GetByID(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sub.JobID != "" {
		t.Fatalf("expected empty job id for NULL, got %q", sub.JobID)
	}
	if sub.Method != scoring.MethodHybrid || sub.OverallFit != skills.FitFair {
		t.Fatalf("unexpected submission %+v", sub)
	}
	if sub.Breakdown["heuristic"] != 70 {
		t.Fatalf("breakdown not decoded: %+v", sub.Breakdown)
	}
	if len(sub.RelevantSkills) != 1 || sub.RelevantSkills[0] != "python" {
		t.Fatalf("relevant skills not decoded: %+v", sub.RelevantSkills)
	}
}

func TestPGRepoGetSubmissionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	mock.ExpectQuery(regexp.QuoteMeta("FROM submissions")).
		WithArgs("missing").
		WillReturnRows(submissionRows())

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListSubmissionsByJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := submissionRows().AddRow(
		"sub-1", "job-1", "", "", "resume.pdf", "resumes/abc_resume.pdf",
		"", 10.0, "", "heuristic", nil, nil, nil, nil, "poor", 0.0, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE job_id = $1")).
		WithArgs("job-1", 50, 0).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), "job-1", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].JobID != "job-1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[0].RelevantSkills == nil || list[0].MissingSkills == nil {
		t.Fatal("skill lists must default to empty slices")
	}
}
