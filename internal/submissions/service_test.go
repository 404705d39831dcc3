package submissions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-evaluator/internal/extract"
	"resume-evaluator/internal/jobs"
	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/shared/storage/object/local"
)

func newService(t *testing.T) (*Service, *jobs.Service) {
	t.Helper()
	jobsSvc := &jobs.Service{Repo: jobs.NewMemoryRepo()}
	return &Service{
		Repo:      NewMemoryRepo(),
		Jobs:      jobsSvc.Repo,
		Store:     local.New(t.TempDir()),
		Extractor: extract.New(nil, nil),
		Scorer:    scoring.NewHybrid(nil),
	}, jobsSvc
}

func TestEvaluateWithJob(t *testing.T) {
	svc, jobsSvc := newService(t)

	job, err := jobsSvc.Create(context.Background(), jobs.CreateInput{
		Title:          "Backend Engineer",
		Description:    "We need Python and Django experience on AWS.",
		RequiredSkills: "Python, Django, AWS",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	resume := "Experienced Python developer. Built Django services. " +
		"Contact: dev@example.com, +1 555 123 4567. Bachelor degree. 5 years experience."
	sub, err := svc.Evaluate(context.Background(), EvaluateInput{
		JobID:    job.ID,
		FileName: "resume.txt",
		File:     strings.NewReader(resume),
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if sub.ID == "" || sub.StorageKey == "" {
		t.Fatalf("expected persisted submission, got %+v", sub)
	}
	if sub.JobID != job.ID {
		t.Fatalf("expected job id %q, got %q", job.ID, sub.JobID)
	}
	if sub.Score <= 0 || sub.Score > 100 {
		t.Fatalf("score out of range: %v", sub.Score)
	}
	if sub.Method != scoring.MethodHybrid && sub.Method != scoring.MethodHeuristic {
		t.Fatalf("unexpected method %q", sub.Method)
	}
	if len(sub.RelevantSkills) == 0 {
		t.Fatalf("expected relevant skills, got %+v", sub)
	}
	for _, s := range sub.RelevantSkills {
		if s == "aws" {
			t.Fatalf("aws should be missing, got relevant %v", sub.RelevantSkills)
		}
	}

	stored, err := svc.Get(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ExtractedText == "" {
		t.Fatal("expected extracted text to be persisted")
	}
}

func TestEvaluateMissingFile(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Evaluate(context.Background(), EvaluateInput{JobDescription: "anything"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEvaluateUnknownJobFallsBackToDescription(t *testing.T) {
	svc, _ := newService(t)

	sub, err := svc.Evaluate(context.Background(), EvaluateInput{
		JobID:          "00000000-0000-0000-0000-000000000000",
		JobDescription: "Looking for a Go developer.",
		FileName:       "resume.txt",
		File:           strings.NewReader("Go developer with five years of service experience."),
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if sub.JobID != "" {
		t.Fatalf("expected empty job id, got %q", sub.JobID)
	}
	// No required skills means the matcher reports no fit.
	if sub.FitPercentage != 0 || string(sub.OverallFit) != "poor" {
		t.Fatalf("expected poor/0 fit, got %v/%v", sub.OverallFit, sub.FitPercentage)
	}
}

func TestListFiltersByJob(t *testing.T) {
	svc, jobsSvc := newService(t)

	job, err := jobsSvc.Create(context.Background(), jobs.CreateInput{Title: "t", Description: "d"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	for i, jobID := range []string{job.ID, ""} {
		_, err := svc.Evaluate(context.Background(), EvaluateInput{
			JobID:          jobID,
			JobDescription: "d",
			FileName:       "resume.txt",
			File:           strings.NewReader(strings.Repeat("text ", i+1)),
		})
		if err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
	}

	all, err := svc.List(context.Background(), "", 10, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(all))
	}

	filtered, err := svc.List(context.Background(), job.ID, 10, 0)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].JobID != job.ID {
		t.Fatalf("expected 1 submission for job, got %+v", filtered)
	}
}
