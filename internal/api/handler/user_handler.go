package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/financetrack/finance-api/internal/core/domain"
	"github.com/financetrack/finance-api/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// Get returns the profile for the given user id. The password hash is
// excluded both by the repository projection and by the User JSON tags.
//
// @Summary      Get a user profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	user, err := h.authService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}
