package incident

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	appErrors "incidentdesk/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base := []Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}
	return NewHTTPClient(append(base, opts...)...)
}

func TestListDecodesIncidents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/incidents", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id":1,"title":"Outage","description":"DB down","service":"payments","ai_severity":"high","ai_category":"infra"},
			{"id":"7f9c","title":"Slow","description":"p99 up","ai_severity":null}
		]`)
	})

	got, err := client.List(context.Background())
	require.NoError(t, err)

	want := []Incident{
		{ID: NumberID(1), Title: "Outage", Description: "DB down", Service: "payments", AISeverity: "high", AICategory: "infra"},
		{ID: StringID("7f9c"), Title: "Slow", Description: "p99 up"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestListHonoursPrefixButHealthDoesNot(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/health":
			_, _ = io.WriteString(w, `{"status":"ok","message":"Incident Management API is running","version":"1.0.0"}`)
		default:
			_, _ = io.WriteString(w, `[]`)
		}
	}, WithPrefix("api/v1/"))

	_, err := client.List(context.Background())
	require.NoError(t, err)
	h, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v1/incidents", "/health"}, paths)
	assert.Equal(t, Health{Status: "ok", Message: "Incident Management API is running", Version: "1.0.0"}, h)
}

func TestListNullBodyIsEmptySlice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	got, err := client.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreatePostsNormalizedBody(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/incidents", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1,"title":"Outage","description":"DB down","service":"payments","ai_severity":"high","ai_category":"infra"}`)
	})

	created, err := client.Create(context.Background(), CreateRequest{
		Title:       "  Outage ",
		Description: "DB down",
		Service:     "payments",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"title": "Outage", "description": "DB down", "service": "payments"}, body)
	assert.Equal(t, NumberID(1), created.ID)
	assert.Equal(t, "high", created.Severity())
	assert.Equal(t, "infra", created.Category())
}

func TestCreateRejectsMissingFieldsWithoutCalling(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.Create(context.Background(), CreateRequest{Title: "   ", Description: "x"})
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeInvalidRequest))
	assert.Equal(t, []string{"title"}, InvalidFields(err))
	assert.Zero(t, hits.Load())
}

func TestUnexpectedStatusIsCoded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Failed to create incident"}`)
	})

	_, err := client.Create(context.Background(), CreateRequest{Title: "a", Description: "b"})
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnexpectedStatus))
	status, ok := appErrors.StatusCodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, err.Error(), "create incident")
}

func TestDecodeFailureIsCoded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeDecodeFailed))
}

func TestTransportFailureIsCoded(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	transport := &http.Transport{}
	t.Cleanup(transport.CloseIdleConnections)
	client := NewHTTPClient(WithBaseURL(url), WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeRequestFailed))
	_, hasStatus := appErrors.StatusCodeOf(err)
	assert.False(t, hasStatus)
}

func TestTimeoutBoundsRequest(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeRequestFailed))
	assert.Less(t, time.Since(start), 5*time.Second)
}
