package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quizdeck/accounts-service/internal/api/metrics"
	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
)

const birthdateLayout = "2006-01-02"

type AuthHandler struct {
	accounts ports.AccountService
	auth     ports.AuthService
}

func NewAuthHandler(accounts ports.AccountService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{accounts: accounts, auth: auth}
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"` // YYYY-MM-DD
	Password  string `json:"password"`
}

type registerResponse struct {
	ID string `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	id, err := h.accounts.Register(c.Request().Context(), domain.RegistrationInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthdate: birthdate,
		Password:  req.Password,
	})
	if err != nil {
		countRegistration(err)
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, registerResponse{ID: id})
}

// Login authenticates an account and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.auth.Login(c.Request().Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		countLogin(err)
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// parseBirthdate converts the wire date; an empty string stays a zero time
// so the pipeline reports the missing field with its own message.
func parseBirthdate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(birthdateLayout, s)
	if err != nil {
		return time.Time{}, domain.InvalidField("birthdate", "")
	}
	return t, nil
}

func countRegistration(err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		if ve.Field != "" {
			metrics.ValidationFailuresTotal.WithLabelValues(ve.Field).Inc()
		}
		return
	}
	metrics.RegistrationsTotal.WithLabelValues("error").Inc()
}

func countLogin(err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
	case errors.Is(err, domain.ErrTooManyAttempts):
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
	default:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
	}
}
