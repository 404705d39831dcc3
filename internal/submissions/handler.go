package submissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-evaluator/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the submissions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches submission routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submissions", h.create)
	rg.GET("/submissions", h.list)
	rg.GET("/submissions/:id", h.get)
}

// evaluationResponse is the caller-facing result of one upload.
type evaluationResponse struct {
	ID             string             `json:"id"`
	Score          float64            `json:"score"`
	Feedback       string             `json:"feedback"`
	Method         string             `json:"evaluation_method"`
	Breakdown      map[string]float64 `json:"breakdown,omitempty"`
	RelevantSkills []string           `json:"relevant_skills"`
	MissingSkills  []string           `json:"missing_skills"`
	OverallFit     string             `json:"overall_fit"`
	FitPercentage  float64            `json:"fit_percentage"`
}

func (h *Handler) create(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file not provided", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file could not be read", nil)
		return
	}
	defer file.Close()

	jobID := c.PostForm("job_id")
	if jobID == "" {
		jobID = c.PostForm("job")
	}
	candidateName := c.PostForm("candidate_name")
	if candidateName == "" {
		candidateName = c.PostForm("name")
	}
	candidateEmail := c.PostForm("candidate_email")
	if candidateEmail == "" {
		candidateEmail = c.PostForm("email")
	}

	sub, err := h.Svc.Evaluate(c.Request.Context(), EvaluateInput{
		JobID:          jobID,
		JobDescription: c.PostForm("job_description"),
		CandidateName:  candidateName,
		CandidateEmail: candidateEmail,
		FileName:       fileHeader.Filename,
		File:           file,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate resume", nil)
		return
	}

	c.Set("submissionId", sub.ID)
	c.Set("evaluationMethod", string(sub.Method))

	respond.Created(c, evaluationResponse{
		ID:             sub.ID,
		Score:          sub.Score,
		Feedback:       sub.Feedback,
		Method:         string(sub.Method),
		Breakdown:      sub.Breakdown,
		RelevantSkills: sub.RelevantSkills,
		MissingSkills:  sub.MissingSkills,
		OverallFit:     string(sub.OverallFit),
		FitPercentage:  sub.FitPercentage,
	})
}

func (h *Handler) get(c *gin.Context) {
	sub, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "submission not found", nil)
			return
		}
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch submission", nil)
		return
	}
	respond.OK(c, sub)
}

func (h *Handler) list(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	list, err := h.Svc.List(c.Request.Context(), c.Query("job_id"), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list submissions", nil)
		return
	}
	respond.OK(c, gin.H{"submissions": list})
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
