package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/api/metrics"
	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// SubscriptionHandler serves the public email-subscription endpoints.
type SubscriptionHandler struct {
	service ports.SubscriptionService
}

func NewSubscriptionHandler(service ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type subscribeResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Subscription *domain.Subscription `json:"subscription,omitempty"`
}

// Subscribe adds an address to the email ledger.
//
// @Summary      Subscribe to email updates
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Email address"
// @Success      201   {object}  subscribeResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.service.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	metrics.SubscriptionEventsTotal.WithLabelValues("subscribe").Inc()
	return c.JSON(http.StatusCreated, subscribeResponse{
		Success:      true,
		Message:      "Successfully subscribed to email updates",
		Subscription: sub,
	})
}

// Unsubscribe marks the address inactive; an unknown address succeeds.
//
// @Summary      Unsubscribe from email updates
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Email address"
// @Success      200   {object}  subscribeResponse
// @Router       /api/unsubscribe [delete]
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.SubscriptionEventsTotal.WithLabelValues("unsubscribe").Inc()
	return c.JSON(http.StatusOK, subscribeResponse{
		Success: true,
		Message: "Successfully unsubscribed",
	})
}
