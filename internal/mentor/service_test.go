package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/notification"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/database"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingChannel struct {
	mu      sync.Mutex
	intents []notification.Intent
	err     error
}

func (r *recordingChannel) Deliver(_ context.Context, intent notification.Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
	return r.err
}

type ServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	users   user.Repository
	channel *recordingChannel
	metrics *metrics.Metrics
	service *ServiceImplementation

	mentee  *user.User
	hafsa   *user.User
	umar    *user.User
	regular *user.User
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := database.NewTestDB(uuid.NewString(), &user.User{}, &MentorRequest{})
	s.Require().NoError(err)
	s.db = db
	s.users = user.NewGORMRepository(db)
	cfg := &config.Config{CacheTTL: time.Minute}
	loader := cache.NewLoader(cache.NewMemoryStore(time.Minute), cfg, zap.NewNop())
	userService := user.NewService(s.users, loader, cfg, zap.NewNop())

	s.channel = &recordingChannel{}
	s.metrics = metrics.New()
	s.service = NewService(NewGORMRepository(db), userService, s.channel, s.metrics, zap.NewNop())
	fixed := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return fixed }

	s.mentee = s.createUser(&user.User{Email: "amina@example.com", DisplayName: "Amina", Gender: "female", CountryOfOrigin: "USA"})
	s.hafsa = s.createUser(&user.User{Email: "hafsa@example.com", DisplayName: "Hafsa", Gender: "female", CountryOfOrigin: "UK",
		Location: "Seattle, WA", IsMentor: true, MentorSpecialties: []string{"new_muslim_guidance", "prayer"}})
	s.umar = s.createUser(&user.User{Email: "umar@example.com", FullName: "Umar Ali", Gender: "male", CountryOfOrigin: "Egypt",
		Location: "Portland", IsMentor: true, MentorSpecialties: []string{"arabic"}})
	s.regular = s.createUser(&user.User{Email: "zaid@example.com", DisplayName: "Zaid", Gender: "male", CountryOfOrigin: "Canada", Location: "Seattle"})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) createUser(u *user.User) *user.User {
	s.Require().NoError(s.users.Create(context.Background(), u))
	return u
}

func names(r directory.Result[user.User]) []string {
	out := make([]string, len(r.Items))
	for i, u := range r.Items {
		out[i] = u.Email
	}
	return out
}

func (s *ServiceTestSuite) TestListOnlyMentors() {
	result, err := s.service.List(context.Background(), Filter{Specialty: directory.All})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"hafsa@example.com", "umar@example.com"}, names(result))
	s.Equal(2, result.Total)
}

func (s *ServiceTestSuite) TestFacets() {
	ctx := context.Background()
	bySpecialty, err := s.service.List(ctx, Filter{Specialty: "prayer"})
	s.Require().NoError(err)
	s.Equal([]string{"hafsa@example.com"}, names(bySpecialty))

	byLocation, err := s.service.List(ctx, Filter{Location: "seattle"})
	s.Require().NoError(err)
	s.Equal([]string{"hafsa@example.com"}, names(byLocation))

	none, err := s.service.List(ctx, Filter{Specialty: "arabic", Location: "seattle"})
	s.Require().NoError(err)
	s.Empty(none.Items)
	s.Equal(2, none.Total)
}

func (s *ServiceTestSuite) TestListRejectsUnknownSort() {
	_, err := s.service.List(context.Background(), Filter{Sort: "email"})
	s.True(errors.Is(err, common.ErrBadRequest))
}

func (s *ServiceTestSuite) TestRequestMentorPersistsAndNotifies() {
	req, err := s.service.RequestMentor(context.Background(), s.mentee, s.umar.ID, CreateRequestRequest{
		AreaOfHelp: "Prayer and worship",
		Message:    " How do I combine <b>prayers</b> when travelling? ",
	})
	s.Require().NoError(err)
	s.Equal("Amina", req.MenteeName)
	s.Equal("Umar Ali", req.MentorName)
	s.Equal("How do I combine prayers when travelling?", req.Message)
	s.Equal(StatusPending, req.Status)

	var stored MentorRequest
	s.Require().NoError(s.db.First(&stored, "id = ?", req.ID).Error)
	s.Equal(s.umar.ID, stored.MentorID)
	s.Equal("umar@example.com", stored.MentorEmail)
	s.Equal("amina@example.com", stored.MenteeEmail)

	s.Require().Len(s.channel.intents, 1)
	intent := s.channel.intents[0]
	s.Equal(notification.MentorRequest, intent.Kind)
	s.Equal(s.umar.ID, intent.To.UserID)
	s.Equal("Prayer and worship", intent.Topic)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Mutations().WithLabelValues("mentor_request", "ok")))
}

func (s *ServiceTestSuite) TestRequestMentorNameFallbacks() {
	anon := s.createUser(&user.User{Email: "noname@example.com", Gender: "male", CountryOfOrigin: "USA"})
	quiet := s.createUser(&user.User{Email: "quiet@example.com", Gender: "male", CountryOfOrigin: "USA", IsMentor: true})

	req, err := s.service.RequestMentor(context.Background(), anon, quiet.ID, CreateRequestRequest{AreaOfHelp: "Other", Message: "Hi"})
	s.Require().NoError(err)
	s.Equal(MenteeFallbackName, req.MenteeName)
	s.Equal(MentorFallbackName, req.MentorName)
}

func (s *ServiceTestSuite) TestRequestMentorValidation() {
	ctx := context.Background()
	_, err := s.service.RequestMentor(ctx, s.mentee, s.hafsa.ID, CreateRequestRequest{AreaOfHelp: "Astrology", Message: "<p></p>"})
	apiErr, ok := common.IsAPIError(err)
	s.Require().True(ok)
	s.Equal("VALIDATION_ERROR", apiErr.Code)
	s.Equal(map[string]string{
		"area_of_help": "Choose one of the listed areas of help.",
		"message":      "Message must contain text.",
	}, apiErr.Details)

	_, err = s.service.RequestMentor(ctx, s.mentee, s.regular.ID, CreateRequestRequest{AreaOfHelp: "Other", Message: "hi"})
	s.True(errors.Is(err, common.ErrNotFound))

	_, err = s.service.RequestMentor(ctx, s.mentee, uuid.New(), CreateRequestRequest{AreaOfHelp: "Other", Message: "hi"})
	s.True(errors.Is(err, common.ErrNotFound))

	_, err = s.service.RequestMentor(ctx, s.hafsa, s.hafsa.ID, CreateRequestRequest{AreaOfHelp: "Other", Message: "hi"})
	s.True(errors.Is(err, common.ErrBadRequest))

	_, err = s.service.RequestMentor(ctx, nil, s.hafsa.ID, CreateRequestRequest{AreaOfHelp: "Other", Message: "hi"})
	s.True(errors.Is(err, common.ErrUnauthorized))
	s.Empty(s.channel.intents)
}

func (s *ServiceTestSuite) TestDeliveryFailureKeepsRequest() {
	s.channel.err = errors.New("smtp down")
	req, err := s.service.RequestMentor(context.Background(), s.mentee, s.hafsa.ID, CreateRequestRequest{AreaOfHelp: "Quran study", Message: "Salaam"})
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, req.ID)
}

func (s *ServiceTestSuite) router(current *user.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
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
	NewHandler(s.service, zap.NewNop()).RegisterRoutes(r.Group("/api/v1"), func(*gin.Context) {}, requireUser)
	return r
}

func (s *ServiceTestSuite) TestHandlerListsCardsWithoutEmail() {
	rec := httptest.NewRecorder()
	s.router(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentors?specialty=arabic", nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "umar@example.com")

	var body struct {
		Data struct {
			Items []user.DirectoryCard `json:"items"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data.Items, 1)
	s.Equal("Umar Ali", body.Data.Items[0].DisplayName)
}

func (s *ServiceTestSuite) TestHandlerNormalizesTypedSpecialty() {
	rec := httptest.NewRecorder()
	s.router(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentors?specialty=New%20Muslim%20Guidance&location=SEATTLE", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Items   []user.DirectoryCard `json:"items"`
			Matched int                  `json:"matched"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data.Items, 1)
	s.Equal("Hafsa", body.Data.Items[0].DisplayName)
	s.Equal(1, body.Data.Matched)
}

func (s *ServiceTestSuite) TestHandlerRequest() {
	r := s.router(s.mentee)
	post := func(path, body string) int {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}
	s.Equal(http.StatusCreated, post("/api/v1/mentors/"+s.hafsa.ID.String()+"/requests", `{"area_of_help":"Quran study","message":"Can we meet?"}`))
	s.Equal(http.StatusBadRequest, post("/api/v1/mentors/not-a-uuid/requests", `{"area_of_help":"Quran study","message":"x"}`))
	s.Equal(http.StatusUnprocessableEntity, post("/api/v1/mentors/"+s.hafsa.ID.String()+"/requests", `{"area_of_help":"Quran study"}`))
}
