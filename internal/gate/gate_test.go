package gate

import (
	"context"
	"errors"
	"testing"

	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/user"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completeUser() *user.User {
	return &user.User{Email: "yusuf@example.com", DisplayName: "Yusuf", Gender: "male", CountryOfOrigin: "UK"}
}

func TestParseScreen(t *testing.T) {
	s, err := ParseScreen("meetreverts")
	require.NoError(t, err)
	assert.Equal(t, MeetReverts, s)

	_, err = ParseScreen("Admin")
	assert.Error(t, err)
	_, err = ParseScreen("")
	assert.Error(t, err)
}

func TestDecide(t *testing.T) {
	incomplete := &user.User{Email: "new@example.com", DisplayName: "New"}

	tests := []struct {
		name    string
		target  Screen
		session Session
		want    Decision
	}{
		{"anonymous is allowed", Events, Anonymous(), Decision{Allow, Events}},
		{"fetch error fails open", Mentors, FetchError(errors.New("token expired")), Decision{Allow, Mentors}},
		{"complete user is allowed", Community, Authenticated(completeUser()), Decision{Allow, Community}},
		{"incomplete user may edit profile", Profile, Authenticated(incomplete), Decision{Allow, Profile}},
		{"incomplete user is redirected", Resources, Authenticated(incomplete), Decision{Redirect, Profile}},
		{"nil user counts as anonymous", MeetReverts, Authenticated(nil), Decision{Allow, MeetReverts}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.target, tt.session))
		})
	}
}

func TestDecide_IncompleteProfileRedirectsFromEveryOtherScreen(t *testing.T) {
	amina := &user.User{Email: "amina@example.com", DisplayName: "Amina", CountryOfOrigin: "USA"}
	require.False(t, amina.IsComplete())

	for _, screen := range Screens {
		d := Decide(screen, Authenticated(amina))
		if screen == Profile {
			assert.True(t, d.Allowed(), screen)
			continue
		}
		assert.Equal(t, Decision{Redirect, Profile}, d, screen)
	}
}

func TestDecide_IsIdempotent(t *testing.T) {
	s := Authenticated(&user.User{Email: "x@example.com", Gender: "female"})
	first := Decide(Events, s)
	second := Decide(Events, s)
	assert.Equal(t, first, second)
	assert.Equal(t, Redirect, first.Outcome)
}

func TestCheck_RecordsSessionKindSeparately(t *testing.T) {
	m := metrics.New()
	g := New(zap.NewNop(), m)
	ctx := context.Background()

	g.Check(ctx, Events, Anonymous())
	g.Check(ctx, Events, FetchError(errors.New("firebase unavailable")))
	g.Check(ctx, Events, FetchError(errors.New("firebase unavailable")))
	d := g.Check(ctx, Events, Authenticated(&user.User{Email: "a@b.c"}))
	assert.Equal(t, Redirect, d.Outcome)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions().WithLabelValues("allow", "anonymous")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GateDecisions().WithLabelValues("allow", "fetch_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions().WithLabelValues("redirect", "authenticated")))
}

func TestCheck_WorksWithoutMetrics(t *testing.T) {
	g := New(zap.NewNop(), nil)
	assert.True(t, g.Check(context.Background(), Profile, Anonymous()).Allowed())
}
