package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/konoJobChange/tyoto-todo-backend/internal/models"
)

// ErrTodoNotFound is returned when the addressed document does not exist.
var ErrTodoNotFound = errors.New("todo not found")

type FirestoreService struct {
	client *firestore.Client
}

func NewFirestoreService(projectID string) (*FirestoreService, error) {
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %v", err)
	}

	return &FirestoreService{
		client: client,
	}, nil
}

func (fs *FirestoreService) Close() error {
	return fs.client.Close()
}

func (fs *FirestoreService) todos(userID string) *firestore.CollectionRef {
	return fs.client.Collection(fmt.Sprintf("users/%s/todos", userID))
}

// ListTodos returns all todos of one user ordered by update_at descending.
// An empty collection yields an empty slice, not an error.
func (fs *FirestoreService) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	iter := fs.todos(userID).
		OrderBy(models.FieldUpdateAt, firestore.Desc).
		Documents(ctx)

	todos := []models.Todo{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate todos: %v", err)
		}

		todo, err := todoFromData(doc.Ref.ID, doc.Data())
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// CreateTodo stores the supplied fields under a fresh document id with both
// timestamps set to now, then re-reads and returns the persisted record.
func (fs *FirestoreService) CreateTodo(ctx context.Context, userID string, fields map[string]interface{}) (models.Todo, error) {
	now := time.Now()
	data := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		data[k] = v
	}
	data[models.FieldCreateAt] = now
	data[models.FieldUpdateAt] = now

	ref := fs.todos(userID).Doc(uuid.New().String())
	if _, err := ref.Set(ctx, data); err != nil {
		return models.Todo{}, fmt.Errorf("failed to create todo: %v", err)
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to read back created todo: %v", err)
	}

	return todoFromData(doc.Ref.ID, doc.Data())
}

// GetTodo fetches a single todo. A missing document maps to ErrTodoNotFound.
func (fs *FirestoreService) GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	doc, err := fs.todos(userID).Doc(todoID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to get todo: %v", err)
	}

	return todoFromData(doc.Ref.ID, doc.Data())
}

// UpdateTodo merges the supplied fields into an existing todo and refreshes
// update_at. Fields absent from the payload are left untouched.
func (fs *FirestoreService) UpdateTodo(ctx context.Context, userID, todoID string, fields map[string]interface{}) error {
	ref := fs.todos(userID).Doc(todoID)
	doc, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrTodoNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get todo: %v", err)
	}
	if !doc.Exists() {
		return ErrTodoNotFound
	}

	data := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data[models.FieldUpdateAt] = time.Now()

	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update todo: %v", err)
	}

	return nil
}

// DeleteTodo removes an existing todo. A missing document maps to
// ErrTodoNotFound and leaves the store unchanged.
func (fs *FirestoreService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	ref := fs.todos(userID).Doc(todoID)
	doc, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrTodoNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get todo: %v", err)
	}
	if !doc.Exists() {
		return ErrTodoNotFound
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete todo: %v", err)
	}

	return nil
}

// todoFromData splits a raw document into the managed timestamps and the
// caller-owned fields.
func todoFromData(id string, data map[string]interface{}) (models.Todo, error) {
	createAt, ok := data[models.FieldCreateAt].(time.Time)
	if !ok {
		return models.Todo{}, fmt.Errorf("todo %s has no create_at timestamp", id)
	}
	updateAt, ok := data[models.FieldUpdateAt].(time.Time)
	if !ok {
		return models.Todo{}, fmt.Errorf("todo %s has no update_at timestamp", id)
	}

	fields := make(map[string]interface{}, len(data))
	for k, v := range data {
		if k == models.FieldCreateAt || k == models.FieldUpdateAt {
			continue
		}
		fields[k] = v
	}

	return models.Todo{
		ID:       id,
		Fields:   fields,
		CreateAt: createAt,
		UpdateAt: updateAt,
	}, nil
}
