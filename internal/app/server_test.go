package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/event"
	"revert_connect_backend/internal/filestorage"
	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/mentor"
	"revert_connect_backend/internal/notification"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/database"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/post"
	"revert_connect_backend/internal/resource"
	"revert_connect_backend/internal/revert"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver map[string]gate.Session

func (s stubResolver) Resolve(_ context.Context, token string) gate.Session {
	if token == "" {
		return gate.Anonymous()
	}
	if session, ok := s[token]; ok {
		return session
	}
	return gate.FetchError(assert.AnError)
}

func newTestServer(t *testing.T, sessions stubResolver) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	cfg := &config.Config{
		GinMode:             gin.TestMode,
		CacheTTL:            time.Minute,
		DirectoryTimezone:   "UTC",
		MetricsEnabled:      true,
		UploadStoragePath:   t.TempDir(),
		UploadPublicBaseURL: "/uploads",
	}
	db, err := database.NewTestDB(uuid.NewString(),
		&user.User{}, &post.Post{}, &event.Event{}, &resource.Resource{}, &mentor.MentorRequest{})
	require.NoError(t, err)

	m := metrics.New()
	loader := cache.NewLoader(cache.NewMemoryStore(time.Minute), cfg, logger)
	files, err := filestorage.NewFileStorageService(cfg, logger)
	require.NoError(t, err)
	channel := notification.NewLogChannel(logger)
	users := user.NewService(user.NewGORMRepository(db), loader, cfg, logger)
	resources := resource.NewGORMRepository(db)
	accessGate := gate.New(logger, m)

	handlers := Handlers{
		Gate:     gate.NewHandler(accessGate),
		Catalog:  catalog.NewHandler(catalog.NewService()),
		User:     user.NewHandler(users, files, logger),
		Post:     post.NewHandler(post.NewService(post.NewGORMRepository(db), loader, m, logger), logger),
		Event:    event.NewHandler(event.NewService(event.NewGORMRepository(db), loader, cfg, m, logger), logger),
		Resource: resource.NewHandler(resource.NewService(resources, nil, loader, m, logger), logger),
		Mentor:   mentor.NewHandler(mentor.NewService(mentor.NewGORMRepository(db), users, channel, m, logger), logger),
		Revert:   revert.NewHandler(revert.NewService(users, channel, m, logger), logger),
	}
	srv, err := NewServer(cfg, logger, handlers, accessGate, sessions, m, files, nil, nil)
	require.NoError(t, err)
	return srv
}

func get(srv *Server, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

var gatedPaths = []string{
	"/api/v1/posts",
	"/api/v1/events",
	"/api/v1/resources",
	"/api/v1/mentors",
	"/api/v1/reverts",
}

func TestServer_IncompleteProfileIsRedirectedToProfile(t *testing.T) {
	amina := &user.User{Email: "amina@example.com", FullName: "Amina"}
	amina.ID = uuid.New()
	srv := newTestServer(t, stubResolver{"amina": gate.Authenticated(amina)})

	for _, path := range gatedPaths {
		rec := get(srv, path, "amina")
		require.Equal(t, http.StatusConflict, rec.Code, path)
		var body struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PROFILE_INCOMPLETE", body.Code)
		assert.Equal(t, "Profile", body.Details["redirect"])
	}

	rec := get(srv, "/api/v1/users/me", "amina")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(srv, "/api/v1/gate?screen=events", "amina")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"redirect"`)
}

func TestServer_CompleteProfileReachesEveryScreen(t *testing.T) {
	bilal := &user.User{Email: "bilal@example.com", DisplayName: "Bilal", Gender: "male", CountryOfOrigin: "Nigeria"}
	bilal.ID = uuid.New()
	srv := newTestServer(t, stubResolver{"bilal": gate.Authenticated(bilal)})

	for _, path := range gatedPaths {
		assert.Equal(t, http.StatusOK, get(srv, path, "bilal").Code, path)
	}
}

func TestServer_AnonymousAndUnverifiedSessionsAreLetThrough(t *testing.T) {
	srv := newTestServer(t, stubResolver{})
	for _, path := range gatedPaths {
		assert.Equal(t, http.StatusOK, get(srv, path, "").Code, path)
		assert.Equal(t, http.StatusOK, get(srv, path, "expired").Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, get(srv, "/api/v1/users/me", "expired").Code)
}

func TestServer_RevertsAskAnonymousViewerForGender(t *testing.T) {
	srv := newTestServer(t, stubResolver{})
	rec := get(srv, "/api/v1/reverts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gender_required":true`)
}

func TestServer_OperationalRoutes(t *testing.T) {
	srv := newTestServer(t, stubResolver{})
	assert.Equal(t, http.StatusOK, get(srv, "/health", "").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/catalog", "").Code)
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/v1/nope", "").Code)

	// Gate decisions recorded above show up in the exposition.
	get(srv, "/api/v1/posts", "")
	rec := get(srv, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gate_decisions_total")
}
