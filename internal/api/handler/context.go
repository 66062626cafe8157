package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// userContextKey is where the session middleware stores the resolved identity.
const userContextKey = "user"

// currentUser extracts the identity injected by the session middleware and
// fast-fails before any service call: a missing user means the middleware
// did not run or the route is misconfigured.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(userContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return user, nil
}
