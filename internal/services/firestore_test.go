package services

import (
	"testing"
	"time"

	"github.com/konoJobChange/tyoto-todo-backend/internal/models"
)

func TestTodoFromDataSplitsManagedFields(t *testing.T) {
	createAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updateAt := createAt.Add(time.Minute)

	todo, err := todoFromData("doc-1", map[string]interface{}{
		"title":              "buy milk",
		"done":               false,
		models.FieldCreateAt: createAt,
		models.FieldUpdateAt: updateAt,
	})
	if err != nil {
		t.Fatalf("todoFromData: %v", err)
	}

	if todo.ID != "doc-1" {
		t.Fatalf("id: %v", todo.ID)
	}
	if !todo.CreateAt.Equal(createAt) || !todo.UpdateAt.Equal(updateAt) {
		t.Fatalf("timestamps: %v %v", todo.CreateAt, todo.UpdateAt)
	}
	if todo.Fields["title"] != "buy milk" || todo.Fields["done"] != false {
		t.Fatalf("fields: %v", todo.Fields)
	}
	if _, ok := todo.Fields[models.FieldCreateAt]; ok {
		t.Fatalf("create_at leaked into the field map")
	}
	if _, ok := todo.Fields[models.FieldUpdateAt]; ok {
		t.Fatalf("update_at leaked into the field map")
	}
}

func TestTodoFromDataRejectsMissingTimestamps(t *testing.T) {
	cases := []map[string]interface{}{
		{"title": "no timestamps"},
		{models.FieldCreateAt: time.Now()},
		{models.FieldUpdateAt: time.Now()},
		{models.FieldCreateAt: "not a time", models.FieldUpdateAt: time.Now()},
	}
	for i, data := range cases {
		if _, err := todoFromData("doc-1", data); err == nil {
			t.Fatalf("case %d: expected an error for %v", i, data)
		}
	}
}
