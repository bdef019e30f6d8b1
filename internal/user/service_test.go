package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/platform/cache"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock implementation of the user.Repository interface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByFirebaseUID(ctx context.Context, uid string) (*User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) Filter(ctx context.Context, q Query) ([]User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func newTestService(repo Repository) *ServiceImplementation {
	cfg := &config.Config{CacheTTL: time.Minute}
	loader := cache.NewLoader(cache.NewMemoryStore(time.Minute), cfg, zap.NewNop())
	return NewService(repo, loader, cfg, zap.NewNop())
}

func firebaseToken(uid, email, name string) *firebaseauth.Token {
	return &firebaseauth.Token{
		UID:    uid,
		Claims: map[string]interface{}{"email": email, "name": name},
	}
}

func TestGetOrCreateFromFirebaseToken_ExistingUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	existing := &User{Email: "amina@example.com"}
	repo.On("FindByFirebaseUID", ctx, "uid-1").Return(existing, nil)

	got, err := newTestService(repo).GetOrCreateFromFirebaseToken(ctx, firebaseToken("uid-1", "amina@example.com", "Amina"))
	require.NoError(t, err)
	assert.Same(t, existing, got)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetOrCreateFromFirebaseToken_CreatesIncompleteUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByFirebaseUID", ctx, "uid-2").Return(nil, common.ErrNotFound)
	repo.On("FindByEmail", ctx, "yusuf@example.com").Return(nil, common.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	got, err := newTestService(repo).GetOrCreateFromFirebaseToken(ctx, firebaseToken("uid-2", "yusuf@example.com", "Yusuf Islam"))
	require.NoError(t, err)
	assert.Equal(t, "yusuf@example.com", got.Email)
	assert.Equal(t, "Yusuf Islam", got.FullName)
	require.NotNil(t, got.FirebaseUID)
	assert.Equal(t, "uid-2", *got.FirebaseUID)
	assert.False(t, got.IsComplete())
	repo.AssertExpectations(t)
}

func TestGetOrCreateFromFirebaseToken_LinksByEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	legacy := &User{Email: "khadija@example.com", DisplayName: "Khadija"}
	repo.On("FindByFirebaseUID", ctx, "uid-3").Return(nil, common.ErrNotFound)
	repo.On("FindByEmail", ctx, "khadija@example.com").Return(legacy, nil)
	repo.On("Update", ctx, legacy).Return(nil)

	got, err := newTestService(repo).GetOrCreateFromFirebaseToken(ctx, firebaseToken("uid-3", "khadija@example.com", ""))
	require.NoError(t, err)
	require.NotNil(t, got.FirebaseUID)
	assert.Equal(t, "uid-3", *got.FirebaseUID)
	repo.AssertExpectations(t)
}

func TestGetOrCreateFromFirebaseToken_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByFirebaseUID", ctx, "uid-4").Return(nil, errors.New("connection refused"))

	_, err := newTestService(repo).GetOrCreateFromFirebaseToken(ctx, firebaseToken("uid-4", "a@b.c", ""))
	assert.Error(t, err)
	_, isAPI := common.IsAPIError(err)
	assert.False(t, isAPI)
}

func TestGetOrCreateFromFirebaseToken_RequiresEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByFirebaseUID", ctx, "uid-5").Return(nil, common.ErrNotFound)

	_, err := newTestService(repo).GetOrCreateFromFirebaseToken(ctx, firebaseToken("uid-5", "", ""))
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestUpdateProfile_AppliesFormAndNormalizes(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	id := uuid.New()
	stored := &User{Email: "amina@example.com"}
	stored.ID = id
	repo.On("FindByID", ctx, id).Return(stored, nil)
	repo.On("Update", ctx, stored).Return(nil)

	got, err := newTestService(repo).UpdateProfile(ctx, id, UpdateProfileRequest{
		DisplayName:       "  Amina ",
		Gender:            "female",
		CountryOfOrigin:   "USA",
		Bio:               "<b>New</b> to Islam",
		ConversionDate:    "2021-03-14",
		Interests:         []string{"Quran Study", "prayer", "prayer"},
		IsMentor:          false,
		MentorSpecialties: []string{"prayer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.DisplayName)
	assert.Equal(t, "New to Islam", got.Bio)
	assert.Equal(t, []string{"quran_study", "prayer"}, []string(got.Interests))
	assert.Empty(t, got.MentorSpecialties)
	assert.Equal(t, "2021", got.ConversionYear())
	assert.True(t, got.IsComplete())
	repo.AssertExpectations(t)
}

func TestUpdateProfile_RejectsBlankRequiredFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(&User{Email: "x@y.z"}, nil)

	_, err := newTestService(repo).UpdateProfile(ctx, id, UpdateProfileRequest{
		DisplayName:     "   ",
		Gender:          "male",
		CountryOfOrigin: "UK",
	})
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFindUsers_CachesUntilProfileUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	yes := true
	q := Query{IsMentor: &yes}
	repo.On("Filter", ctx, q).Return([]User{{Email: "mentor@x.com", IsMentor: true}}, nil).Twice()

	svc := newTestService(repo)
	_, err := svc.FindUsers(ctx, q)
	require.NoError(t, err)
	_, err = svc.FindUsers(ctx, q)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Filter", 1)

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(&User{Email: "m@x.com"}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)
	_, err = svc.SetProfileImage(ctx, id, "/uploads/a.png")
	require.NoError(t, err)

	_, err = svc.FindUsers(ctx, q)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Filter", 2)
}
