package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizdeck/accounts-service/internal/api/metrics"
	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type profileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"` // YYYY-MM-DD
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
}

// Me returns the account of the token subject.
//
// @Summary      Current account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /accounts/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile replaces the profile fields of an account.
//
// @Summary      Update profile
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Account id"
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      204   "updated"
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /accounts/{id}/profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		return err
	}

	if err := h.accounts.UpdateProfile(c.Request().Context(), id, domain.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthdate: birthdate,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword verifies the current password and replaces it.
//
// @Summary      Change password
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Account id"
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      204   "changed"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /accounts/{id}/password [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	metrics.PasswordChangesTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// List returns every account. Admin only.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	users, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
