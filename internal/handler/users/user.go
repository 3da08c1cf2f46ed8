// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/mapper"
	"yoga-studio/internal/middleware"
	"yoga-studio/internal/service"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getUserByID = store.GetUserByID
	deleteUser  = store.DeleteUser
)

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 "invalid ID"
// @Failure     404 "user not found"
// @Security    ApiKeyAuth
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.NoContent(http.StatusNotFound)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.UserToResponse(user))
	}
}

// DeleteUserHandler removes an account. Only the account owner may delete
// it: the token subject must match the target user's email.
// @Summary     Delete a user
// @Tags        users
// @Param       id path int true "user ID"
// @Success     200 "deleted"
// @Failure     400 "invalid ID"
// @Failure     401 "not the account owner"
// @Failure     404 "user not found"
// @Security    ApiKeyAuth
// @Router      /user/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.NoContent(http.StatusNotFound)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.Subject != user.Email {
			return c.NoContent(http.StatusUnauthorized)
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusOK)
	}
}
