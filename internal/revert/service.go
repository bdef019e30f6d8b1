// File: internal/revert/service.go
package revert

import (
	"context"
	"errors"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/notification"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/platform/sanitize"
	"revert_connect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const screenName = "meet_reverts"

// UserDirectory is the slice of the user service the Meet Reverts screen reads from.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindUsers(ctx context.Context, q user.Query) ([]user.User, error)
}

// Service defines the Meet Reverts screen operations.
type Service interface {
	List(ctx context.Context, viewer *user.User, f Filter) (Result[user.User], error)
	Connect(ctx context.Context, from *user.User, toID uuid.UUID, message string) (*ConnectResponse, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	users   UserDirectory
	channel notification.Channel
	metrics *metrics.Metrics
	now     func() time.Time
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new revert service.
func NewService(users UserDirectory, channel notification.Channel, m *metrics.Metrics, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		users:   users,
		channel: channel,
		metrics: m,
		now:     time.Now,
		logger:  logger.Named("RevertService"),
	}
}

// List returns the viewer's peers narrowed by the facets.
// A viewer without a gender gets an empty list flagged GenderRequired; the store is not queried.
func (s *ServiceImplementation) List(ctx context.Context, viewer *user.User, f Filter) (Result[user.User], error) {
	isMentor := false
	q := user.Query{IsMentor: &isMentor, Sort: f.Sort}
	if err := q.ValidateSort(); err != nil {
		return Result[user.User]{}, err
	}
	if !CanBrowse(viewer) {
		s.metrics.ObserveDirectoryQuery(screenName, false)
		return Result[user.User]{
			Result:         directory.NewResult(Population(nil, viewer), nil, f.Facets()...),
			GenderRequired: true,
		}, nil
	}

	q.Gender = viewer.Gender
	candidates, err := s.users.FindUsers(ctx, q)
	if err != nil {
		s.logger.Error("Failed to load reverts", zap.Error(err))
	}
	result := directory.NewResult(Population(candidates, viewer), err, f.Facets()...)
	s.metrics.ObserveDirectoryQuery(screenName, result.LoadFailed)
	return Result[user.User]{Result: result}, nil
}

// Connect hands a connection intent to the notification channel. Nothing is persisted.
func (s *ServiceImplementation) Connect(ctx context.Context, from *user.User, toID uuid.UUID, message string) (*ConnectResponse, error) {
	if from == nil {
		return nil, common.ErrUnauthorized
	}
	message = sanitize.PlainText(message)
	if message == "" {
		return nil, common.NewValidationAPIError(map[string]string{"message": "Message must contain text."})
	}

	to, err := s.users.GetUserByID(ctx, toID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound.WithDetails("Revert not found.")
		}
		return nil, err
	}
	if len(Population([]user.User{*to}, from)) == 0 {
		// Only members of the caller's own peer pool can be contacted.
		return nil, common.ErrNotFound.WithDetails("Revert not found.")
	}

	intent := notification.Intent{
		Kind:    notification.PeerConnection,
		From:    notification.Party{UserID: from.ID, Name: from.PublicName("Community Member"), Email: from.Email},
		To:      notification.Party{UserID: to.ID, Name: to.PublicName("Community Member"), Email: to.Email},
		Message: message,
		At:      s.now(),
	}
	err = s.channel.Deliver(ctx, intent)
	s.metrics.ObserveMutation("peer_connection", err)
	if err != nil {
		s.logger.Error("Failed to hand off connection intent", zap.Error(err),
			zap.String("fromUserID", from.ID.String()), zap.String("toUserID", to.ID.String()))
		return nil, common.ErrServiceUnavailable
	}
	return &ConnectResponse{ToUserID: to.ID.String(), ToName: intent.To.Name, Status: "logged"}, nil
}
