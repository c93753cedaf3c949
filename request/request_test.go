package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequester(handler http.HandlerFunc) (*Requester, *httptest.Server) {
	server := httptest.NewServer(handler)
	r := New("test", &http.Client{Timeout: 5 * time.Second}, nil)
	return r, server
}

func TestSendPayload(t *testing.T) {
	t.Parallel()
	r, server := newTestRequester(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"lprice":"16987.01","curr1":"BTC","curr2":"USD"}`))
	})
	defer server.Close()

	result := struct {
		LPrice string `json:"lprice"`
	}{}
	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: server.URL, Result: &result}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "16987.01", result.LPrice)
}

func TestSendPayloadInvalidInput(t *testing.T) {
	t.Parallel()
	var nilRequester *Requester
	assert.ErrorIs(t, nilRequester.SendPayload(context.Background(), nil), errRequestSystemIsNil)

	r := New("test", &http.Client{}, nil)
	assert.ErrorIs(t, r.SendPayload(context.Background(), nil), errRequestFunctionIsNil)

	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, errRequestItemNil)

	err = r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodGet}, nil
	})
	assert.ErrorIs(t, err, errInvalidPath)
}

func TestSendPayloadHTTPError(t *testing.T) {
	t.Parallel()
	r, server := newTestRequester(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	})
	defer server.Close()

	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: server.URL}, nil
	})
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "Invalid API key", httpErr.Message)
}

func TestSendPayloadRemoteError(t *testing.T) {
	t.Parallel()
	r, server := newTestRequester(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"error":"Nonce must be incremented"}`))
	})
	defer server.Close()

	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodPost, Path: server.URL}, nil
	})
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Nonce must be incremented", remoteErr.Message)
}

func TestSendPayloadInvalidJSON(t *testing.T) {
	t.Parallel()
	r, server := newTestRequester(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	defer server.Close()

	result := map[string]interface{}{}
	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: server.URL, Result: &result}, nil
	})
	assert.Error(t, err)
}

func TestUserAgent(t *testing.T) {
	t.Parallel()
	var received string
	r, server := newTestRequester(func(w http.ResponseWriter, req *http.Request) {
		received = req.UserAgent()
		w.Write([]byte(`{}`))
	})
	defer server.Close()
	r.UserAgent = "bot-cex.io-tester"

	err := r.SendPayload(context.Background(), func() (*Item, error) {
		return &Item{Method: http.MethodGet, Path: server.URL}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bot-cex.io-tester", received)
}

func TestGetNonceMilli(t *testing.T) {
	t.Parallel()
	r := New("test", &http.Client{}, nil)

	first := r.GetNonceMilli()
	r.timedLock.UnlockIfLocked()
	assert.GreaterOrEqual(t, int64(first), time.Now().Add(-time.Minute).UnixMilli())

	second := r.GetNonceMilli()
	r.timedLock.UnlockIfLocked()
	assert.Greater(t, int64(second), int64(first))
}
