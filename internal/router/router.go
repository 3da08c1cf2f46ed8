// File: internal/router/router.go
package router

import (
	"yoga-studio/internal/cache"
	"yoga-studio/internal/database"
	"yoga-studio/internal/handler"
	"yoga-studio/internal/handler/auth"
	"yoga-studio/internal/handler/sessions"
	"yoga-studio/internal/handler/teachers"
	"yoga-studio/internal/handler/users"
	"yoga-studio/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup registers all routes. Everything except login, register, and the
// health check sits behind RequireAuth.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, cch))

	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/register", auth.RegisterHandler(db))

	apiSessions := api.Group("/session", middleware.RequireAuth)
	apiSessions.GET("", sessions.ListSessionsHandler(db))
	apiSessions.GET("/:id", sessions.FindSessionHandler(db))
	apiSessions.POST("", sessions.CreateSessionHandler(db))
	apiSessions.PUT("/:id", sessions.UpdateSessionHandler(db))
	apiSessions.DELETE("/:id", sessions.DeleteSessionHandler(db))
	apiSessions.POST("/:id/participate/:userId", sessions.ParticipateHandler(db))
	apiSessions.DELETE("/:id/participate/:userId", sessions.UnparticipateHandler(db))

	apiUsers := api.Group("/user", middleware.RequireAuth)
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	apiTeachers := api.Group("/teacher", middleware.RequireAuth)
	apiTeachers.GET("", teachers.ListTeachersHandler(db))
	apiTeachers.GET("/:id", teachers.GetTeacherHandler(db))
}
