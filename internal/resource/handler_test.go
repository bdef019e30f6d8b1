package resource

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/database"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newResourceRouter(t *testing.T, current *user.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.NewTestDB(uuid.NewString(), &Resource{})
	require.NoError(t, err)
	cfg := &config.Config{CacheTTL: time.Minute}
	svc := NewService(NewGORMRepository(db), nil, cache.NewLoader(cache.NewMemoryStore(time.Minute), cfg, zap.NewNop()), nil, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if current != nil {
			user.SetCurrent(c, current)
		}
	})
	requireUser := func(c *gin.Context) {
		if user.Current(c) == nil {
			common.RespondWithError(c, common.ErrUnauthorized)
		}
	}
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r.Group("/api/v1"), func(*gin.Context) {}, requireUser)
	return r
}

func TestResourceHandler_ShareThenFilter(t *testing.T) {
	u := &user.User{Email: "khadija@example.com"}
	u.ID = uuid.New()
	r := newResourceRouter(t, u)

	for _, body := range []string{
		`{"title":"Prayer Guide","category":"prayer","resource_type":"article","url":"https://example.com/p"}`,
		`{"title":"Seerah podcast","description":"Life of the Prophet","category":"daily_life","resource_type":"audio"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources?search=guide", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Items []Resource `json:"items"`
			Total int        `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Prayer Guide", body.Data.Items[0].Title)
	assert.Equal(t, 2, body.Data.Total)
}

func TestResourceHandler_RejectsUnknownCategory(t *testing.T) {
	u := &user.User{Email: "khadija@example.com"}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources",
		bytes.NewBufferString(`{"title":"x","category":"astrology","resource_type":"article"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newResourceRouter(t, u).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResourceHandler_SearchStatusCodes(t *testing.T) {
	r := newResourceRouter(t, nil)
	cases := map[string]int{
		"/api/v1/resources/search?q=prayer":         http.StatusServiceUnavailable,
		"/api/v1/resources/search":                  http.StatusBadRequest,
		"/api/v1/resources/search?q=prayer&limit=0": http.StatusBadRequest,
	}
	for url, want := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, want, rec.Code, url)
	}
}
