package auth

import (
	"context"
	"errors"
	"testing"

	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/user"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*firebaseauth.Token), args.Error(1)
}

type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) GetOrCreateFromFirebaseToken(ctx context.Context, token *firebaseauth.Token) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func TestResolve_NoTokenIsAnonymous(t *testing.T) {
	verifier := new(MockVerifier)
	r := NewResolver(verifier, new(MockProvisioner), zap.NewNop())

	s := r.Resolve(context.Background(), "")
	assert.Equal(t, gate.SessionAnonymous, s.Kind)
	verifier.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestResolve_InvalidTokenIsFetchError(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", ctx, "bad").Return(nil, errors.New("signature invalid"))

	s := NewResolver(verifier, new(MockProvisioner), zap.NewNop()).Resolve(ctx, "bad")
	assert.Equal(t, gate.SessionFetchError, s.Kind)
	assert.ErrorContains(t, s.Err, "signature invalid")
	assert.Nil(t, s.User)
}

func TestResolve_StoreErrorIsFetchError(t *testing.T) {
	ctx := context.Background()
	token := &firebaseauth.Token{UID: "uid-1"}
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", ctx, "good").Return(token, nil)
	users := new(MockProvisioner)
	users.On("GetOrCreateFromFirebaseToken", ctx, token).Return(nil, errors.New("db down"))

	s := NewResolver(verifier, users, zap.NewNop()).Resolve(ctx, "good")
	assert.Equal(t, gate.SessionFetchError, s.Kind)
}

func TestResolve_Authenticated(t *testing.T) {
	ctx := context.Background()
	token := &firebaseauth.Token{UID: "uid-1"}
	u := &user.User{Email: "amina@example.com"}
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", ctx, "good").Return(token, nil)
	users := new(MockProvisioner)
	users.On("GetOrCreateFromFirebaseToken", ctx, token).Return(u, nil)

	s := NewResolver(verifier, users, zap.NewNop()).Resolve(ctx, "good")
	assert.Equal(t, gate.SessionAuthenticated, s.Kind)
	assert.Same(t, u, s.User)
}

func TestResolve_WithoutVerifier(t *testing.T) {
	s := NewResolver(nil, nil, zap.NewNop()).Resolve(context.Background(), "some-token")
	assert.Equal(t, gate.SessionFetchError, s.Kind)
	assert.ErrorIs(t, s.Err, ErrSessionsDisabled)
}
