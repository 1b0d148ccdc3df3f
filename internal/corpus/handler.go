package corpus

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/shared/server/respond"
)

// DevHandler exposes ingest routes for the in-memory corpus so postings
// can be added without a database or feed. Callers mount it only in dev.
type DevHandler struct {
	Repo *MemoryRepo
}

// NewDevHandler constructs a DevHandler.
func NewDevHandler(repo *MemoryRepo) *DevHandler {
	return &DevHandler{Repo: repo}
}

// RegisterDevRoutes attaches corpus ingest routes.
func (h *DevHandler) RegisterDevRoutes(r gin.IRoutes) {
	r.POST("/jobs", h.postJob)
}

type postJobRequest struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Salary         string   `json:"salary"`
	URL            string   `json:"url"`
	PostedDate     string   `json:"posted_date"`
	RequiredSkills []string `json:"required_skills"`
}

type postJobResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"job_id"`
}

func (h *DevHandler) postJob(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job body", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "title is required", nil)
		return
	}

	stored := h.Repo.Add(JobPosting{
		ID:             req.ID,
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Salary:         req.Salary,
		URL:            req.URL,
		PostedDate:     req.PostedDate,
		RequiredSkills: req.RequiredSkills,
	})
	respond.JSON(c, http.StatusCreated, postJobResponse{Success: true, JobID: stored[0].ID})
}
