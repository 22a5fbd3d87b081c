package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/konoJobChange/tyoto-todo-backend/internal/services"
)

// NewRouter wires the full request pipeline: error normalizer outermost,
// then recovery and CORS, then the auth gate in front of every /users route.
// /health stays open for the hosting runtime's liveness probe.
func NewRouter(store TodoStore, verifier services.TokenVerifier) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h := NewTodoHandler(store)

	api := e.Group("", RequireAuth(verifier))
	api.GET("/users", h.HandleUsersRoot)
	api.GET("/users/:uid/todos", h.ListTodos)
	api.POST("/users/:uid/todos", h.CreateTodo)
	api.GET("/users/:uid/todos/:todoId", h.GetTodo)
	api.PATCH("/users/:uid/todos/:todoId", h.UpdateTodo)
	api.DELETE("/users/:uid/todos/:todoId", h.DeleteTodo)

	return e
}
