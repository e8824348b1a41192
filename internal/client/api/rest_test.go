package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREST(t *testing.T, handler http.HandlerFunc) *REST {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewREST(srv.URL, 2*time.Second)
}

func TestREST_Do_JSONRoundTrip(t *testing.T) {
	type echo struct {
		Name string `json:"name"`
	}

	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/prescriptions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.Name = "echo:" + in.Name
		_ = json.NewEncoder(w).Encode(in)
	})

	var out echo
	err := c.Do(context.Background(), http.MethodPost, "/prescriptions", echo{Name: "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "echo:x", out.Name)
}

func TestREST_Do_BearerTokenAttached(t *testing.T) {
	var gotAuth string
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	c.SetToken("tok-123")
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/reminders", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	c.ClearToken()
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/reminders", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestREST_Do_BackendMessageSurfaced(t *testing.T) {
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"date is invalid"}`))
	})

	err := c.Do(context.Background(), http.MethodPost, "/prescriptions", map[string]string{}, nil)
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadRequest, backendErr.Status)
	assert.Equal(t, "date is invalid", backendErr.Message)
	assert.Equal(t, "date is invalid", UserMessage(err, "fallback"))
}

func TestREST_Do_FallbackMessageWhenEnvelopeMissing(t *testing.T) {
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	})

	err := c.Do(context.Background(), http.MethodGet, "/prescriptions", nil, nil)
	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), backendErr.Message)
	assert.Equal(t, "Failed to fetch prescriptions", UserMessage(err, "Failed to fetch prescriptions"))
}

func TestREST_Do_Unauthorized(t *testing.T) {
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestREST_Do_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewREST(srv.URL, time.Second)
	err := c.Do(context.Background(), http.MethodGet, "/reminders", nil, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestREST_Do_MalformedResponse(t *testing.T) {
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/profile", nil, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestREST_Upload_MultipartForm(t *testing.T) {
	c := newTestREST(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("profileImage")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "fake-png-bytes", string(data))
		assert.Equal(t, "me.png", hdr.Filename)

		_ = json.NewEncoder(w).Encode(map[string]string{"profileImage": "/uploads/me.png"})
	})

	var out struct {
		ProfileImage string `json:"profileImage"`
	}
	err := c.Upload(context.Background(), "/profile/image", "profileImage", "me.png",
		strings.NewReader("fake-png-bytes"), &out)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/me.png", out.ProfileImage)
}

func TestREST_FetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/medicine.csv" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("name,generic_name\nPanadol,Paracetamol\n"))
	}))
	t.Cleanup(srv.Close)

	c := NewREST(srv.URL, time.Second)

	data, err := c.FetchDocument(context.Background(), srv.URL+"/medicine.csv")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Panadol")

	_, err = c.FetchDocument(context.Background(), srv.URL+"/missing.csv")
	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusNotFound, backendErr.Status)
}

func TestUserMessage_NonBackendError(t *testing.T) {
	assert.Equal(t, "fallback", UserMessage(errors.New("dial tcp: refused"), "fallback"))
}
