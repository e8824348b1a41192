// Package models defines the record types exchanged with the RxEase backend.
// Identifiers are assigned by the backend (Mongo-style "_id"); a record with
// an empty ID has not been persisted yet.
package models

// User is the authenticated identity returned by the backend.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}
