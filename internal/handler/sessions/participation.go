// File: internal/handler/sessions/participation.go
package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	participate         = service.Participate
	noLongerParticipate = service.NoLongerParticipate
)

// @Summary     Participate in a session
// @Tags        sessions
// @Param       id     path int true "session ID"
// @Param       userId path int true "user ID"
// @Success     200 "booked"
// @Failure     400 "invalid ID or already participating"
// @Failure     404 "session or user not found"
// @Security    ApiKeyAuth
// @Router      /session/{id}/participate/{userId} [post]
func ParticipateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		if err := participate(c.Request().Context(), db, sessionID, userID); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return c.NoContent(http.StatusNotFound)
			case errors.Is(err, service.ErrBadRequest):
				return c.NoContent(http.StatusBadRequest)
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}
		return c.NoContent(http.StatusOK)
	}
}

// @Summary     Cancel participation in a session
// @Tags        sessions
// @Param       id     path int true "session ID"
// @Param       userId path int true "user ID"
// @Success     200 "cancelled"
// @Failure     400 "invalid ID or not participating"
// @Failure     404 "session not found"
// @Security    ApiKeyAuth
// @Router      /session/{id}/participate/{userId} [delete]
func UnparticipateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		if err := noLongerParticipate(c.Request().Context(), db, sessionID, userID); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return c.NoContent(http.StatusNotFound)
			case errors.Is(err, service.ErrBadRequest):
				return c.NoContent(http.StatusBadRequest)
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}
		return c.NoContent(http.StatusOK)
	}
}
