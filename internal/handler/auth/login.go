// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/service"
	"yoga-studio/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

const tokenTTL = 24 * time.Hour

// LoginHandler verifies email/password and returns a signed bearer token.
// @Summary     Log in
// @Description Verifies credentials and returns a JWT with the user profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.JwtResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Bad credentials"})
		}

		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Bad credentials"})
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.JwtResponse{
			Token:     token,
			Type:      "Bearer",
			ID:        user.ID,
			Username:  user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Admin:     user.IsAdmin,
		})
	}
}
