package models

import (
	"time"
)

// Reserved field names attached to every stored todo document. Everything
// else in a document is caller-supplied and schemaless.
const (
	FieldCreateAt = "create_at"
	FieldUpdateAt = "update_at"
)

// Todo is one document from a user's todos collection. Fields holds the
// caller-supplied payload; the id and both timestamps are managed by the
// store and never live inside Fields.
type Todo struct {
	ID       string
	Fields   map[string]interface{}
	CreateAt time.Time
	UpdateAt time.Time
}

// Response flattens the record into the wire shape: the stored fields plus
// id and both timestamps as RFC 3339 UTC strings.
func (t Todo) Response() map[string]interface{} {
	out := make(map[string]interface{}, len(t.Fields)+3)
	for k, v := range t.Fields {
		out[k] = v
	}
	out["id"] = t.ID
	out[FieldCreateAt] = t.CreateAt.UTC().Format(time.RFC3339Nano)
	out[FieldUpdateAt] = t.UpdateAt.UTC().Format(time.RFC3339Nano)
	return out
}
