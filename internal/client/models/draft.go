package models

import "github.com/google/uuid"

// Draft wraps a record that has not been persisted yet. The Ref is a
// client-local correlation handle for UI state (edit modals, retry of a
// failed save); it is never sent to the backend and never collides with a
// backend-assigned id.
type Draft[T any] struct {
	Ref    string
	Record T
}

func NewDraft[T any](record T) Draft[T] {
	return Draft[T]{Ref: uuid.NewString(), Record: record}
}
