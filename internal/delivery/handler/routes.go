package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the HTTP surface. Listing a classroom's questions
// and reading a classroom are public; every mutating route sits behind the
// bearer middleware.
func RegisterRoutes(e *echo.Echo, h *Handler, authMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.GET("/users/me", h.Me, authMiddleware)

	api.POST("/classrooms", h.CreateClassroom, authMiddleware)
	api.GET("/classrooms/:id", h.GetClassroom)
	api.POST("/classrooms/:id/students", h.EnrollStudents, authMiddleware)

	api.POST("/classrooms/:id/questions", h.PostQuestion, authMiddleware)
	api.GET("/classrooms/:id/questions", h.ListQuestions)
}
