// File: internal/gate/gate.go
package gate

import (
	"context"

	"revert_connect_backend/internal/platform/metrics"

	"go.uber.org/zap"
)

// Outcome is the terminal state of a gate evaluation.
type Outcome string

const (
	Allow    Outcome = "allow"
	Redirect Outcome = "redirect"
)

// Decision is the result of one navigation check.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	// Target is the screen to go to: the requested one on Allow, Profile on Redirect.
	Target Screen `json:"target"`
}

// Allowed reports whether the requested screen may render.
func (d Decision) Allowed() bool { return d.Outcome == Allow }

// Decide is the pure navigation rule.
//
//	Anonymous | FetchError                 => Allow
//	Authenticated, complete                => Allow
//	Authenticated, incomplete, on Profile  => Allow
//	Authenticated, incomplete, elsewhere   => Redirect(Profile)
func Decide(target Screen, s Session) Decision {
	if s.Kind != SessionAuthenticated || s.User == nil {
		return Decision{Outcome: Allow, Target: target}
	}
	if s.User.IsComplete() || target == Profile {
		return Decision{Outcome: Allow, Target: target}
	}
	return Decision{Outcome: Redirect, Target: Profile}
}

// Gate evaluates Decide and records every decision.
type Gate struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates a Gate. m may be nil.
func New(logger *zap.Logger, m *metrics.Metrics) *Gate {
	return &Gate{logger: logger.Named("Gate"), metrics: m}
}

// Check runs the gate for one navigation.
func (g *Gate) Check(ctx context.Context, target Screen, s Session) Decision {
	d := Decide(target, s)
	g.metrics.ObserveGateDecision(string(d.Outcome), string(s.Kind))

	switch s.Kind {
	case SessionFetchError:
		// Fail open. The error never reaches the client.
		g.logger.Warn("Current user could not be fetched; allowing as anonymous",
			zap.String("screen", string(target)), zap.Error(s.Err))
	case SessionAnonymous:
		g.logger.Debug("Anonymous navigation allowed", zap.String("screen", string(target)))
	default:
		if !d.Allowed() {
			g.logger.Info("Incomplete profile redirected",
				zap.String("screen", string(target)),
				zap.String("userID", s.User.ID.String()))
		}
	}
	return d
}
