// File: internal/event/service.go
package event

import (
	"context"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/platform/sanitize"
	"revert_connect_backend/internal/user"

	"go.uber.org/zap"
)

const screenName = "events"

// Service defines the Events screen operations.
type Service interface {
	List(ctx context.Context, f Filter) (directory.Result[Event], error)
	Create(ctx context.Context, organizer *user.User, req CreateEventRequest) (*Event, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	repo     Repository
	cache    *cache.Loader
	metrics  *metrics.Metrics
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new event service. "Today" is taken in DIRECTORY_TIMEZONE.
func NewService(repo Repository, loader *cache.Loader, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *ServiceImplementation {
	logger = logger.Named("EventService")
	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("Falling back to the local timezone", zap.Error(err))
		loc = time.Local
	}
	return &ServiceImplementation{
		repo:     repo,
		cache:    loader,
		metrics:  m,
		location: loc,
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock replaces the clock used to decide what "today" is.
func (s *ServiceImplementation) SetClock(now func() time.Time) {
	s.now = now
}

// List loads the event collection and applies the Events facets.
func (s *ServiceImplementation) List(ctx context.Context, f Filter) (directory.Result[Event], error) {
	if f.Sort == "" {
		f.Sort = DefaultSort
	}
	if _, err := f.Sort.OrderClause(sortColumns); err != nil {
		return directory.Result[Event]{}, err
	}

	events, err := cache.GetOrLoad(ctx, s.cache, CacheKeyPrefix+string(f.Sort), func(ctx context.Context) ([]Event, error) {
		return s.repo.List(ctx, f.Sort)
	})
	if err != nil {
		s.logger.Error("Failed to load events", zap.Error(err))
	}
	today := StartOfDay(s.now(), s.location)
	result := directory.NewResult(events, err, f.Facets(today)...)
	s.metrics.ObserveDirectoryQuery(screenName, result.LoadFailed)
	return result, nil
}

// Create schedules an event and invalidates the cached collections.
func (s *ServiceImplementation) Create(ctx context.Context, organizer *user.User, req CreateEventRequest) (*Event, error) {
	if organizer == nil {
		return nil, common.ErrUnauthorized
	}
	e := &Event{
		Title:         sanitize.PlainText(req.Title),
		Description:   sanitize.PlainText(req.Description),
		EventType:     req.EventType,
		Date:          req.Date,
		Time:          sanitize.PlainText(req.Time),
		Location:      sanitize.PlainText(req.Location),
		MaxAttendees:  req.MaxAttendees,
		OrganizerName: organizer.PublicName("Community Member"),
	}
	if _, ok := e.Day(s.location); !ok {
		return nil, common.NewValidationAPIError(map[string]string{"Date": "The date field must be a date in the format 2006-01-02."})
	}
	if e.Title == "" {
		return nil, common.NewValidationAPIError(map[string]string{"Title": "The title field is required."})
	}
	if req.MaxAttendees != nil {
		zero := 0
		e.CurrentAttendees = &zero
	}
	organizerID := organizer.ID
	e.OrganizerID = &organizerID

	err := s.repo.Create(ctx, e)
	s.metrics.ObserveMutation("event", err)
	if err != nil {
		s.logger.Error("Failed to create event", zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyPrefix)
	s.logger.Info("Event created", zap.String("eventID", e.ID.String()), zap.String("date", e.Date))
	return e, nil
}
