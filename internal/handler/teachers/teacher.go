// File: internal/handler/teachers/teacher.go
package teachers

import (
	"errors"
	"net/http"
	"strconv"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/mapper"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getTeacherByID = store.GetTeacherByID
	listTeachers   = store.ListTeachers
)

// @Summary     Get a teacher by ID
// @Tags        teachers
// @Produce     json
// @Param       id path int true "teacher ID"
// @Success     200 {object} api.TeacherResponse
// @Failure     400 "invalid ID"
// @Failure     404 "teacher not found"
// @Security    ApiKeyAuth
// @Router      /teacher/{id} [get]
func GetTeacherHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		teacher, err := getTeacherByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.NoContent(http.StatusNotFound)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.TeacherToResponse(teacher))
	}
}

// @Summary     List all teachers
// @Tags        teachers
// @Produce     json
// @Success     200 {array} api.TeacherResponse
// @Security    ApiKeyAuth
// @Router      /teacher [get]
func ListTeachersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		teachers, err := listTeachers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, mapper.TeachersToResponse(teachers))
	}
}
