package elasticsearch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"revert_connect_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// roundTripFunc answers requests in tests; responses carry the product header the client checks.
type roundTripFunc func(*http.Request) (int, string)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	status, body := f(req)
	h := http.Header{}
	h.Set("X-Elastic-Product", "Elasticsearch")
	h.Set("Content-Type", "application/json")
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body)), Request: req}, nil
}

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	client, err := NewClient(&config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestCreateIndexIfNotExists_Creates(t *testing.T) {
	var created string
	client, err := NewClientWithTransport(roundTripFunc(func(req *http.Request) (int, string) {
		switch req.Method {
		case http.MethodHead:
			return http.StatusNotFound, ""
		case http.MethodPut:
			b, _ := io.ReadAll(req.Body)
			created = string(b)
			return http.StatusOK, `{"acknowledged":true}`
		}
		return http.StatusBadRequest, ""
	}))
	require.NoError(t, err)

	err = CreateIndexIfNotExists(context.Background(), client, "resources",
		map[string]interface{}{"properties": map[string]interface{}{"title": map[string]string{"type": "text"}}}, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, created, `"mappings"`)
	assert.Contains(t, created, `"title"`)
}

func TestCreateIndexIfNotExists_AlreadyThere(t *testing.T) {
	calls := 0
	client, err := NewClientWithTransport(roundTripFunc(func(req *http.Request) (int, string) {
		calls++
		return http.StatusOK, ""
	}))
	require.NoError(t, err)

	require.NoError(t, CreateIndexIfNotExists(context.Background(), client, "resources", map[string]interface{}{}, zap.NewNop()))
	assert.Equal(t, 1, calls)
}

func TestCreateIndexIfNotExists_ReportsReason(t *testing.T) {
	client, err := NewClientWithTransport(roundTripFunc(func(req *http.Request) (int, string) {
		if req.Method == http.MethodHead {
			return http.StatusNotFound, ""
		}
		return http.StatusBadRequest, `{"error":{"type":"mapper_parsing_exception","reason":"bad mapping"}}`
	}))
	require.NoError(t, err)

	err = CreateIndexIfNotExists(context.Background(), client, "resources", map[string]interface{}{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapper_parsing_exception: bad mapping")
}

func TestErrorReason_FallsBackToRawBody(t *testing.T) {
	assert.Equal(t, "gateway down", ErrorReason(strings.NewReader("gateway down")))
}
