package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/julien-sobczak/nt-publish/internal/document"
	"github.com/julien-sobczak/nt-publish/internal/testutil"
	"github.com/julien-sobczak/nt-publish/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	payload := newPayload(t)

	t.Run("Success", func(t *testing.T) {
		requests := 0
		// Setup mock server
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/workflows/w1", r.URL.Path)
			assert.Equal(t, "acme", r.URL.Query().Get("customer"))
			assert.Equal(t, payload.ContentType(), r.Header.Get("Content-Type"))
			_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
			assert.NoError(t, err)

			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "u", username)
			assert.Equal(t, "p", password)

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, payload.Bytes(), body)

			w.Write(testutil.GoldenFileNamed(t, "job.json"))
		}))
		defer ts.Close()

		outcome := NewClient(ts.Client()).Submit(context.Background(), mustParse(t, ts.URL+"/api/workflows/w1?customer=acme"), payload, Credentials{"u", "p"})
		assert.Equal(t, Success, outcome.Kind)
		assert.Equal(t, http.StatusOK, outcome.StatusCode)
		assert.Equal(t, string(testutil.GoldenFileNamed(t, "job.json")), outcome.Body)
		assert.NotEmpty(t, outcome.RequestID)
		assert.NoError(t, outcome.Err())
		assert.Equal(t, 1, requests)
	})

	t.Run("Failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "bad input")
		}))
		defer ts.Close()

		outcome := NewClient(ts.Client()).Submit(context.Background(), mustParse(t, ts.URL), payload, Credentials{"u", "p"})
		assert.Equal(t, Failure, outcome.Kind)
		assert.Equal(t, http.StatusBadRequest, outcome.StatusCode)
		assert.Equal(t, "bad input", outcome.Body)

		err := outcome.Err()
		assert.ErrorIs(t, err, ErrServer)
		var serverErr *ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, "bad input", serverErr.Body)
		assert.Equal(t, "bad input", err.Error())
	})

	t.Run("Non-200 success status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer ts.Close()

		outcome := NewClient(ts.Client()).Submit(context.Background(), mustParse(t, ts.URL), payload, Credentials{"u", "p"})
		assert.Equal(t, Failure, outcome.Kind)
		assert.Equal(t, "server status: 202 Accepted", outcome.Err().Error())
	})

	t.Run("Transport failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		target := mustParse(t, ts.URL)
		ts.Close() // Nobody is listening anymore

		outcome := NewClient(nil).Submit(context.Background(), target, payload, Credentials{"u", "p"})
		assert.Equal(t, TransportFailure, outcome.Kind)
		assert.Error(t, outcome.Cause)

		err := outcome.Err()
		assert.ErrorIs(t, err, ErrTransport)
		assert.Contains(t, err.Error(), TransportMessage)
	})

	t.Run("Canceled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		outcome := NewClient(ts.Client()).Submit(ctx, mustParse(t, ts.URL), payload, Credentials{"u", "p"})
		assert.Equal(t, TransportFailure, outcome.Kind)
		assert.True(t, errors.Is(outcome.Cause, context.Canceled))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "failure", Failure.String())
	assert.Equal(t, "transport failure", TransportFailure.String())
}

/* Test Helpers */

func newPayload(t *testing.T) *workflow.Payload {
	payload, err := workflow.Build(&document.Document{Name: "guide.md", Text: "# Guide\n"})
	require.NoError(t, err)
	return payload
}

func mustParse(t *testing.T, rawURL string) *url.URL {
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u
}
