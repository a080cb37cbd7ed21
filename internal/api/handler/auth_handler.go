package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accountly/user-service/internal/api/metrics"
	"github.com/accountly/user-service/internal/core/domain"
	"github.com/accountly/user-service/internal/core/ports"
)

// AuthHandler serves the unauthenticated endpoints: account creation and login.
type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Create handles POST /user.
//
// @Summary      Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  missingFieldsResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /user [post]
func (h *AuthHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return renderValidationError(c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "Email already exists."})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Msg("user creation failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, user)
}

// Login handles POST /login.
//
// @Summary      Login and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  missingFieldsResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return renderValidationError(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials."})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// renderValidationError maps a validation failure to the 400 body listing the
// offending fields. Any other validator error is treated as a malformed payload.
func renderValidationError(c echo.Context, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, missingFieldsResponse{MissingFields: ve.Fields})
	}
	return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
}
