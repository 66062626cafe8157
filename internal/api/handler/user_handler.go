package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/api/metrics"
	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// UserHandler serves the profile and resume endpoints. The acting user is
// always the authenticated identity; there are no cross-user reads.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Preferences *domain.Preferences `json:"preferences"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type resumeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Resume  *domain.Resume `json:"resume"`
}

// Profile returns the authenticated user's profile.
//
// @Summary      Get the current user's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	// The middleware already resolved a fresh copy; re-reading keeps the
	// response consistent with any concurrent mutation.
	fresh, err := h.userService.Profile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: fresh})
}

// UpdateProfile applies a partial profile update.
//
// @Summary      Update the current user's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Preferences: req.Preferences,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: updated})
}

// UploadResume attaches a resume file to the profile, replacing any
// previous one.
//
// @Summary      Upload a resume
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        resume  formData  file  true  "Resume file (pdf, doc or docx, max 5MB)"
// @Success      200     {object}  resumeResponse
// @Failure      400     {object}  map[string]any
// @Failure      401     {object}  map[string]any
// @Router       /api/user/resume [post]
func (h *UserHandler) UploadResume(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}
	defer src.Close()

	resume, err := h.userService.AttachResume(c.Request().Context(), user.ID, ports.ResumeUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  src,
	})
	if err != nil {
		return err
	}

	metrics.ResumeUploadsTotal.Inc()
	return c.JSON(http.StatusOK, resumeResponse{
		Success: true,
		Message: "Resume uploaded successfully",
		Resume:  resume,
	})
}
