package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-evaluator/internal/jobs"
)

func setupRouter(t *testing.T) (*gin.Engine, *jobs.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, jobsSvc := newService(t)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, jobsSvc
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(fileContent)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func TestHandlerCreateSubmission(t *testing.T) {
	r, jobsSvc := setupRouter(t)

	job, err := jobsSvc.Create(context.Background(), jobs.CreateInput{
		Title:          "Backend Engineer",
		Description:    "Python and Django on AWS.",
		RequiredSkills: "Python, Django, AWS",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	body, contentType := multipartBody(t,
		map[string]string{"job_id": job.ID, "candidate_name": "Ada"},
		"resume", "resume.txt",
		"Python developer with Django experience. ada@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp evaluationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected id in response")
	}
	if resp.Method == "" || resp.OverallFit == "" {
		t.Fatalf("incomplete response %+v", resp)
	}
	if resp.RelevantSkills == nil || resp.MissingSkills == nil {
		t.Fatalf("skill lists must be present, got %+v", resp)
	}
}

func TestHandlerCreateSubmissionWithoutFile(t *testing.T) {
	r, _ := setupRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"job_description": "anything"}, "", "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "resume file not provided") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestHandlerAliasFields(t *testing.T) {
	r, _ := setupRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"job_description": "Go developer wanted.",
			"name":            "Ada",
			"email":           "ada@example.com",
		},
		"resume", "resume.txt", "Go developer.")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp evaluationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	getW := httptest.NewRecorder()
	getReq := httptest.NewRequest(http.MethodGet, "/api/submissions/"+resp.ID, nil)
	r.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getW.Code)
	}

	var sub Submission
	if err := json.Unmarshal(getW.Body.Bytes(), &sub); err != nil {
		t.Fatalf("decode submission: %v", err)
	}
	if sub.CandidateName != "Ada" || sub.CandidateEmail != "ada@example.com" {
		t.Fatalf("alias fields not applied: %+v", sub)
	}
}

func TestHandlerGetMissingSubmission(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/submissions/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandlerListSubmissions(t *testing.T) {
	r, _ := setupRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"job_description": "d"}, "resume", "resume.txt", "text")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	listW := httptest.NewRecorder()
	listReq := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	r.ServeHTTP(listW, listReq)
	if listW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listW.Code)
	}

	var resp struct {
		Submissions []Submission `json:"submissions"`
	}
	if err := json.Unmarshal(listW.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(resp.Submissions))
	}
}
