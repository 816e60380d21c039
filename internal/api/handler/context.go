package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id and role prove
// the middleware ran.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, domain.Role(roleStr), nil
}

// requireSelfOrAdmin allows an account mutation only for the token subject
// itself or an admin.
func requireSelfOrAdmin(c echo.Context, targetID string) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if userID != targetID && role != domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}
