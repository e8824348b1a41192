// Package api implements the HTTP transport for the RxEase backend.
// Services talk to the backend exclusively through the Client interface so
// tests can substitute a fake transport.
package api

import (
	"context"
	"io"
)

// Client is the transport surface used by application services.
//
// Contract:
//   - Do: JSON request/response round trip; body and out may be nil.
//   - Upload: multipart POST of a single file field.
//   - FetchDocument: unauthenticated GET of a raw document (e.g. the
//     medicine CSV fallback).
//   - SetToken/Token/ClearToken: manage the bearer credential attached to
//     every authenticated call. The client instance is the single injection
//     point for the current session; there is no ambient token lookup.
//
// All methods must honor context cancellation and the configured timeout.
type Client interface {
	Do(ctx context.Context, method, path string, body, out any) error
	Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error
	FetchDocument(ctx context.Context, url string) ([]byte, error)
	SetToken(token string)
	Token() string
	ClearToken()
}
