// Package credentials persists the session credential (and a cached copy of
// the user profile) in the local client database between runs.
package credentials

import "context"

// Fixed keys under which session state is stored.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Repository interface {
	// Get returns the stored value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear wipes all stored session state (logout, failed revalidation).
	Clear(ctx context.Context) error
}
