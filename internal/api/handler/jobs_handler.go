package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/api/metrics"
	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// JobsHandler serves the read-only proxy for the external jobs feed.
type JobsHandler struct {
	service ports.JobsService
}

func NewJobsHandler(service ports.JobsService) *JobsHandler {
	return &JobsHandler{service: service}
}

type jobsResponse struct {
	Success bool                `json:"success"`
	Jobs    []domain.JobPosting `json:"jobs"`
}

// List returns postings from the external feed, served through the cache.
//
// @Summary      List remote job postings
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Free-text search"
// @Param        category  query     string  false  "Job category"
// @Success      200       {object}  jobsResponse
// @Failure      500       {object}  map[string]any
// @Router       /api/jobs [get]
func (h *JobsHandler) List(c echo.Context) error {
	postings, err := h.service.List(c.Request().Context(), ports.JobsQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	if postings == nil {
		postings = []domain.JobPosting{}
	}

	metrics.JobsFeedRequestsTotal.Inc()
	return c.JSON(http.StatusOK, jobsResponse{Success: true, Jobs: postings})
}
