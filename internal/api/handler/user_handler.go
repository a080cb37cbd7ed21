package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accountly/user-service/internal/core/domain"
	"github.com/accountly/user-service/internal/core/ports"
)

// UserHandler serves the token-protected user endpoints.
type UserHandler struct {
	userService ports.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService ports.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing users failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found."})
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found."})
		}
		h.logger.Error().Err(err).Int("user_id", id).Msg("fetching user failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id. The body may carry any non-empty subset of
// name, email and password; updating an id that does not exist still returns
// the confirmation, matching the zero-rows-affected contract of the store.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	input := ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.userService.Update(c.Request().Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrNoUpdateFields) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "No valid parameters provided for update."})
		}
		h.logger.Error().Err(err).Int("user_id", id).Msg("updating user failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User was updated!"})
}

// Delete handles DELETE /users/:id. Deleting a missing id succeeds.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid user id"})
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error().Err(err).Int("user_id", id).Msg("deleting user failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "An error occurred."})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User was deleted!"})
}

func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
