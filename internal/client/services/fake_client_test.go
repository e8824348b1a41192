package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// ---- fake transport ----

type call struct {
	Method string
	Path   string
	Body   any
}

// fakeClient implements api.Client for unit tests. Each request is recorded;
// responses are scripted per "METHOD path" key.
type fakeClient struct {
	token string

	Calls []call

	// Responses maps "METHOD /path" to a JSON document decoded into out.
	Responses map[string]string
	// Errs maps "METHOD /path" to an error returned instead of a response.
	Errs map[string]error

	UploadResp string
	UploadErr  error
	LastUpload struct {
		Path, Field, Filename string
		Data                  []byte
	}

	DocumentResp []byte
	DocumentErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		Responses: make(map[string]string),
		Errs:      make(map[string]error),
	}
}

func (f *fakeClient) Do(ctx context.Context, method, path string, body, out any) error {
	f.Calls = append(f.Calls, call{Method: method, Path: path, Body: body})

	key := method + " " + path
	if err, ok := f.Errs[key]; ok {
		return err
	}
	if doc, ok := f.Responses[key]; ok && out != nil {
		return json.Unmarshal([]byte(doc), out)
	}
	if _, ok := f.Responses[key]; !ok {
		return fmt.Errorf("unexpected call: %s", key)
	}
	return nil
}

func (f *fakeClient) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	f.LastUpload.Path = path
	f.LastUpload.Field = field
	f.LastUpload.Filename = filename
	f.LastUpload.Data, _ = io.ReadAll(r)
	if f.UploadErr != nil {
		return f.UploadErr
	}
	if out != nil && f.UploadResp != "" {
		return json.Unmarshal([]byte(f.UploadResp), out)
	}
	return nil
}

func (f *fakeClient) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	return f.DocumentResp, f.DocumentErr
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Token() string         { return f.token }
func (f *fakeClient) ClearToken()           { f.token = "" }

func (f *fakeClient) callKeys() []string {
	keys := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		keys = append(keys, c.Method+" "+c.Path)
	}
	return keys
}

func requireNoCalls(t *testing.T, f *fakeClient) {
	t.Helper()
	require.Empty(t, f.Calls, "no network call expected")
}
