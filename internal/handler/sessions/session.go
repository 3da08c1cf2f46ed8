// File: internal/handler/sessions/session.go
package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/mapper"
	"yoga-studio/internal/service"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getSessionByID     = store.GetSessionByID
	listSessions       = store.ListSessions
	createSession      = store.CreateSession
	updateSession      = store.UpdateSession
	deleteSession      = store.DeleteSession
	sessionFromRequest = mapper.SessionFromRequest
)

// Domain 404/400 responses carry no body; only parse and server errors get
// a message.

// @Summary     Get a session by ID
// @Tags        sessions
// @Produce     json
// @Param       id path int true "session ID"
// @Success     200 {object} api.SessionResponse
// @Failure     400 "invalid ID"
// @Failure     404 "session not found"
// @Security    ApiKeyAuth
// @Router      /session/{id} [get]
func FindSessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		s, err := getSessionByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.NoContent(http.StatusNotFound)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.SessionToResponse(s))
	}
}

// @Summary     List all sessions
// @Tags        sessions
// @Produce     json
// @Success     200 {array} api.SessionResponse
// @Security    ApiKeyAuth
// @Router      /session [get]
func ListSessionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessions, err := listSessions(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.SessionsToResponse(sessions))
	}
}

// @Summary     Create a session
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       body body api.SessionRequest true "session"
// @Success     200 {object} api.SessionResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /session [post]
func CreateSessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SessionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		s, err := sessionFromRequest(c.Request().Context(), db, &req)
		if err != nil {
			if errors.Is(err, service.ErrBadRequest) {
				return c.NoContent(http.StatusBadRequest)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		created, err := createSession(c.Request().Context(), db, s)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.SessionToResponse(created))
	}
}

// @Summary     Update a session
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id   path int                true "session ID"
// @Param       body body api.SessionRequest true "session"
// @Success     200 {object} api.SessionResponse
// @Failure     400 "invalid ID"
// @Security    ApiKeyAuth
// @Router      /session/{id} [put]
func UpdateSessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		var req api.SessionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		s, err := sessionFromRequest(c.Request().Context(), db, &req)
		if err != nil {
			if errors.Is(err, service.ErrBadRequest) {
				return c.NoContent(http.StatusBadRequest)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		s.ID = id

		if err := updateSession(c.Request().Context(), db, s); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		updated, err := getSessionByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.SessionToResponse(updated))
	}
}

// @Summary     Delete a session
// @Tags        sessions
// @Param       id path int true "session ID"
// @Success     200 "deleted"
// @Failure     400 "invalid ID"
// @Failure     404 "session not found"
// @Security    ApiKeyAuth
// @Router      /session/{id} [delete]
func DeleteSessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		if _, err := getSessionByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.NoContent(http.StatusNotFound)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := deleteSession(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusOK)
	}
}
