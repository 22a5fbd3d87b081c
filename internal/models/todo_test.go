package models

import (
	"testing"
	"time"
)

func TestResponseFlattensRecord(t *testing.T) {
	createAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updateAt := createAt.Add(90 * time.Second)

	todo := Todo{
		ID:       "abc-123",
		Fields:   map[string]interface{}{"title": "buy milk", "done": false},
		CreateAt: createAt,
		UpdateAt: updateAt,
	}

	out := todo.Response()

	if out["id"] != "abc-123" {
		t.Fatalf("id: %v", out["id"])
	}
	if out["title"] != "buy milk" || out["done"] != false {
		t.Fatalf("stored fields not preserved: %v", out)
	}
	if out[FieldCreateAt] != "2024-03-01T12:00:00Z" {
		t.Fatalf("create_at: %v", out[FieldCreateAt])
	}
	if out[FieldUpdateAt] != "2024-03-01T12:01:30Z" {
		t.Fatalf("update_at: %v", out[FieldUpdateAt])
	}
}

func TestResponseConvertsToUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	todo := Todo{
		ID:       "x",
		CreateAt: time.Date(2024, 3, 1, 21, 0, 0, 0, jst),
		UpdateAt: time.Date(2024, 3, 1, 21, 0, 0, 500000000, jst),
	}

	out := todo.Response()
	if out[FieldCreateAt] != "2024-03-01T12:00:00Z" {
		t.Fatalf("create_at not normalized to UTC: %v", out[FieldCreateAt])
	}
	if out[FieldUpdateAt] != "2024-03-01T12:00:00.5Z" {
		t.Fatalf("update_at lost sub-second precision: %v", out[FieldUpdateAt])
	}
}

func TestResponseDoesNotShareFieldMap(t *testing.T) {
	todo := Todo{
		ID:     "x",
		Fields: map[string]interface{}{"title": "a"},
	}
	out := todo.Response()
	out["title"] = "b"
	if todo.Fields["title"] != "a" {
		t.Fatalf("Response must copy the field map")
	}
}
