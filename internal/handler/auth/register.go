// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/model"
	"yoga-studio/internal/service"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// RegisterHandler creates a new account. Registering an email twice fails
// the second call with 400.
// @Summary     Register
// @Description Creates a user account with a hashed password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "account details"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		_, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Error: Email is already taken!"})
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User registered successfully!"})
	}
}
