package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(timeout time.Duration) *HTTPClient {
	c := NewHTTPClient(timeout, "jokecli-test", nil)
	c.newRequestID = func() string { return "req-1" }
	return c
}

func TestFetch_SendsHeadersAndReturnsBody(t *testing.T) {
	var gotAccept, gotUA, gotID, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get(common.RequestIDHeaderName)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"categories":["Misc"]}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(2*time.Second).Fetch(context.Background(), srv.URL+"/categories?format=json", "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "application/json", gotAccept, "empty accept defaults to JSON")
	assert.Equal(t, "jokecli-test", gotUA)
	assert.Equal(t, "req-1", gotID)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", resp.Reason)
	assert.JSONEq(t, `{"categories":["Misc"]}`, string(resp.Body))
}

func TestFetch_CustomAccept(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	_, err := newTestClient(time.Second).Fetch(context.Background(), srv.URL, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", gotAccept)
}

func TestFetch_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":true}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(time.Second).Fetch(context.Background(), srv.URL, "")
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	assert.Equal(t, "Too Many Requests", resp.Reason)
}

func TestFetch_TransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := newTestClient(time.Second).Fetch(context.Background(), addr, "")
	require.ErrorIs(t, err, common.ErrTransport)

	_, err = newTestClient(time.Second).Fetch(context.Background(), "file:///etc/hosts", "")
	require.ErrorIs(t, err, common.ErrTransport)

	_, err = newTestClient(time.Second).Fetch(context.Background(), "http://[::1", "")
	require.ErrorIs(t, err, common.ErrTransport)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(50*time.Millisecond).Fetch(context.Background(), srv.URL, "")
	require.ErrorIs(t, err, common.ErrTransport)
}

func TestFetch_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(time.Second).Fetch(ctx, srv.URL, "")
	require.ErrorIs(t, err, common.ErrTransport)
	assert.True(t, IsCanceled(err))
	assert.False(t, IsCanceled(errors.New("other")))
}
