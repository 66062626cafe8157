package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/api/metrics"
	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// SavedJobsHandler serves the per-user saved-jobs list endpoints.
type SavedJobsHandler struct {
	service ports.SavedJobsService
}

func NewSavedJobsHandler(service ports.SavedJobsService) *SavedJobsHandler {
	return &SavedJobsHandler{service: service}
}

type saveJobRequest struct {
	JobID   string `json:"jobId"   validate:"required"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type savedJobsResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	SavedJobs []domain.SavedJob `json:"savedJobs"`
}

// Save appends a posting snapshot to the authenticated user's list.
//
// @Summary      Save a job to the user's list
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveJobRequest  true  "Job reference"
// @Success      200   {object}  savedJobsResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/user/save-job [post]
func (h *SavedJobsHandler) Save(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req saveJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.service.Save(c.Request().Context(), user.ID, req.JobID, req.Title, req.Company)
	if err != nil {
		return err
	}

	metrics.SavedJobsTotal.WithLabelValues("save").Inc()
	return c.JSON(http.StatusOK, savedJobsResponse{
		Success:   true,
		Message:   "Job saved successfully",
		SavedJobs: list,
	})
}

// Unsave removes a posting from the list. Removing an absent posting is a
// no-op, not an error.
//
// @Summary      Remove a saved job
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "External job id"
// @Success      200    {object}  savedJobsResponse
// @Failure      401    {object}  map[string]any
// @Router       /api/user/saved-jobs/{jobId} [delete]
func (h *SavedJobsHandler) Unsave(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	list, err := h.service.Unsave(c.Request().Context(), user.ID, c.Param("jobId"))
	if err != nil {
		return err
	}

	metrics.SavedJobsTotal.WithLabelValues("unsave").Inc()
	return c.JSON(http.StatusOK, savedJobsResponse{
		Success:   true,
		Message:   "Job removed from saved jobs",
		SavedJobs: list,
	})
}
