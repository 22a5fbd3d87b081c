package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/konoJobChange/tyoto-todo-backend/internal/models"
	"github.com/konoJobChange/tyoto-todo-backend/internal/services"
)

// TodoStore is the document-store surface the handlers need. Implemented by
// services.FirestoreService in production and by a fake in tests.
type TodoStore interface {
	ListTodos(ctx context.Context, userID string) ([]models.Todo, error)
	CreateTodo(ctx context.Context, userID string, fields map[string]interface{}) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID string, fields map[string]interface{}) error
	DeleteTodo(ctx context.Context, userID, todoID string) error
}

type TodoHandler struct {
	store TodoStore
}

func NewTodoHandler(store TodoStore) *TodoHandler {
	return &TodoHandler{store: store}
}

func (h *TodoHandler) HandleUsersRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "hello users. this is dummy endpoint!!",
		"status":  http.StatusOK,
	})
}

func (h *TodoHandler) ListTodos(c echo.Context) error {
	todos, err := h.store.ListTodos(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}

	items := make([]map[string]interface{}, 0, len(todos))
	for _, todo := range todos {
		items = append(items, todo.Response())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TodoHandler) CreateTodo(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return err
	}

	todo, err := h.store.CreateTodo(c.Request().Context(), c.Param("uid"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo.Response())
}

func (h *TodoHandler) GetTodo(c echo.Context) error {
	todo, err := h.store.GetTodo(c.Request().Context(), c.Param("uid"), c.Param("todoId"))
	if errors.Is(err, services.ErrTodoNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo.Response())
}

func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return err
	}

	err := h.store.UpdateTodo(c.Request().Context(), c.Param("uid"), c.Param("todoId"), fields)
	if errors.Is(err, services.ErrTodoNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	err := h.store.DeleteTodo(c.Request().Context(), c.Param("uid"), c.Param("todoId"))
	if errors.Is(err, services.ErrTodoNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
