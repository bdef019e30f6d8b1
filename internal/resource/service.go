// File: internal/resource/service.go
package resource

import (
	"context"
	"strings"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/platform/sanitize"
	"revert_connect_backend/internal/user"

	"go.uber.org/zap"
)

const screenName = "resources"

// Service defines the Resources screen operations.
type Service interface {
	List(ctx context.Context, f Filter) (directory.Result[Resource], error)
	Create(ctx context.Context, submitter *user.User, req CreateResourceRequest) (*Resource, error)
	Search(ctx context.Context, q SearchQuery) ([]Resource, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	repo    Repository
	indexer *Indexer
	cache   *cache.Loader
	metrics *metrics.Metrics
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new resource service. indexer may be nil or disabled.
func NewService(repo Repository, indexer *Indexer, loader *cache.Loader, m *metrics.Metrics, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, indexer: indexer, cache: loader, metrics: m, logger: logger.Named("ResourceService")}
}

// List loads the resource collection and applies the Resources facets.
func (s *ServiceImplementation) List(ctx context.Context, f Filter) (directory.Result[Resource], error) {
	if f.Sort == "" {
		f.Sort = DefaultSort
	}
	if _, err := f.Sort.OrderClause(sortColumns); err != nil {
		return directory.Result[Resource]{}, err
	}

	resources, err := cache.GetOrLoad(ctx, s.cache, CacheKeyPrefix+string(f.Sort), func(ctx context.Context) ([]Resource, error) {
		return s.repo.List(ctx, f.Sort)
	})
	if err != nil {
		s.logger.Error("Failed to load resources", zap.Error(err))
	}
	result := directory.NewResult(resources, err, f.Facets()...)
	s.metrics.ObserveDirectoryQuery(screenName, result.LoadFailed)
	return result, nil
}

// Create stores a shared resource. Indexing is best effort; the periodic sync repairs misses.
func (s *ServiceImplementation) Create(ctx context.Context, submitter *user.User, req CreateResourceRequest) (*Resource, error) {
	if submitter == nil {
		return nil, common.ErrUnauthorized
	}
	r := &Resource{
		Title:           sanitize.PlainText(req.Title),
		Description:     sanitize.PlainText(req.Description),
		Category:        strings.TrimSpace(req.Category),
		ResourceType:    strings.TrimSpace(req.ResourceType),
		DifficultyLevel: strings.TrimSpace(req.DifficultyLevel),
		URL:             strings.TrimSpace(req.URL),
		Author:          sanitize.PlainText(req.Author),
	}
	submitterID := submitter.ID
	r.SubmittedByID = &submitterID

	if r.Title == "" {
		return nil, common.NewValidationAPIError(map[string]string{
			"title": "Title must contain text.",
		})
	}

	err := s.repo.Create(ctx, r)
	s.metrics.ObserveMutation("resource", err)
	if err != nil {
		s.logger.Error("Failed to create resource", zap.Error(err), zap.String("submitterID", submitterID.String()))
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyPrefix)

	if s.indexer.Enabled() {
		if err := s.indexer.Index(ctx, *r); err != nil {
			s.logger.Warn("Failed to index resource", zap.String("resourceID", r.ID.String()), zap.Error(err))
		}
	}
	s.logger.Info("Resource created", zap.String("resourceID", r.ID.String()), zap.String("category", r.Category))
	return r, nil
}

// Search queries the full-text index.
func (s *ServiceImplementation) Search(ctx context.Context, q SearchQuery) ([]Resource, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return nil, common.ErrBadRequest.WithDetails("Query parameter 'q' is required.")
	}
	if !s.indexer.Enabled() {
		return nil, ErrSearchDisabled
	}
	results, err := s.indexer.Search(ctx, q)
	if err != nil {
		s.logger.Error("Resource search failed", zap.String("query", q.Text), zap.Error(err))
		return nil, common.ErrServiceUnavailable
	}
	return results, nil
}
