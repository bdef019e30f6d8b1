// File: internal/mentor/service.go
package mentor

import (
	"context"
	"errors"
	"time"

	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/notification"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/platform/sanitize"
	"revert_connect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const screenName = "mentors"

// UserDirectory is the slice of the user service the Mentors screen reads from.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindUsers(ctx context.Context, q user.Query) ([]user.User, error)
}

// Service defines the Mentors screen operations.
type Service interface {
	List(ctx context.Context, f Filter) (directory.Result[user.User], error)
	RequestMentor(ctx context.Context, mentee *user.User, mentorID uuid.UUID, req CreateRequestRequest) (*MentorRequest, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	repo    Repository
	users   UserDirectory
	channel notification.Channel
	metrics *metrics.Metrics
	now     func() time.Time
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new mentor service.
func NewService(repo Repository, users UserDirectory, channel notification.Channel, m *metrics.Metrics, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:    repo,
		users:   users,
		channel: channel,
		metrics: m,
		now:     time.Now,
		logger:  logger.Named("MentorService"),
	}
}

// List loads every mentor and applies the Mentors facets.
func (s *ServiceImplementation) List(ctx context.Context, f Filter) (directory.Result[user.User], error) {
	isMentor := true
	q := user.Query{IsMentor: &isMentor, Sort: f.Sort}
	if err := q.ValidateSort(); err != nil {
		return directory.Result[user.User]{}, err
	}

	mentors, err := s.users.FindUsers(ctx, q)
	if err != nil {
		s.logger.Error("Failed to load mentors", zap.Error(err))
	}
	result := directory.NewResult(mentors, err, f.Facets()...)
	s.metrics.ObserveDirectoryQuery(screenName, result.LoadFailed)
	return result, nil
}

// RequestMentor records a mentorship request and hands it to the notification channel.
// A delivery failure is logged; the stored request stands.
func (s *ServiceImplementation) RequestMentor(ctx context.Context, mentee *user.User, mentorID uuid.UUID, req CreateRequestRequest) (*MentorRequest, error) {
	if mentee == nil {
		return nil, common.ErrUnauthorized
	}
	if mentee.ID == mentorID {
		return nil, common.ErrBadRequest.WithDetails("You cannot request mentorship from yourself.")
	}

	message := sanitize.PlainText(req.Message)
	fields := map[string]string{}
	if !catalog.HelpAreas.Contains(req.AreaOfHelp) {
		fields["area_of_help"] = "Choose one of the listed areas of help."
	}
	if message == "" {
		fields["message"] = "Message must contain text."
	}
	if len(fields) > 0 {
		return nil, common.NewValidationAPIError(fields)
	}

	mentor, err := s.users.GetUserByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound.WithDetails("Mentor not found.")
		}
		return nil, err
	}
	if !mentor.IsMentor {
		return nil, common.ErrNotFound.WithDetails("Mentor not found.")
	}

	request := &MentorRequest{
		MenteeID:    mentee.ID,
		MenteeName:  mentee.PublicName(MenteeFallbackName),
		MenteeEmail: mentee.Email,
		MentorID:    mentor.ID,
		MentorName:  mentor.PublicName(MentorFallbackName),
		MentorEmail: mentor.Email,
		AreaOfHelp:  req.AreaOfHelp,
		Message:     message,
		Status:      StatusPending,
	}
	err = s.repo.Create(ctx, request)
	s.metrics.ObserveMutation("mentor_request", err)
	if err != nil {
		s.logger.Error("Failed to create mentor request", zap.Error(err),
			zap.String("menteeID", mentee.ID.String()), zap.String("mentorID", mentor.ID.String()))
		return nil, err
	}

	intent := notification.Intent{
		Kind:    notification.MentorRequest,
		From:    notification.Party{UserID: mentee.ID, Name: request.MenteeName, Email: request.MenteeEmail},
		To:      notification.Party{UserID: mentor.ID, Name: request.MentorName, Email: request.MentorEmail},
		Topic:   request.AreaOfHelp,
		Message: request.Message,
		At:      s.now(),
	}
	if err := s.channel.Deliver(ctx, intent); err != nil {
		s.logger.Warn("Mentor request stored but not delivered", zap.String("requestID", request.ID.String()), zap.Error(err))
	}
	s.logger.Info("Mentor request created", zap.String("requestID", request.ID.String()), zap.String("area", request.AreaOfHelp))
	return request, nil
}
