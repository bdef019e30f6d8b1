// File: internal/post/service.go
package post

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

const screenName = "community"

// Service defines the Community screen operations.
type Service interface {
	List(ctx context.Context, f Filter) (directory.Result[Post], error)
	Create(ctx context.Context, author *user.User, req CreatePostRequest) (*Post, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	repo    Repository
	cache   *cache.Loader
	metrics *metrics.Metrics
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new post service.
func NewService(repo Repository, loader *cache.Loader, m *metrics.Metrics, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, cache: loader, metrics: m, logger: logger.Named("PostService")}
}

// List loads the post collection and applies the Community facets.
// A failed load yields an empty result flagged LoadFailed; only a bad sort key is an error.
func (s *ServiceImplementation) List(ctx context.Context, f Filter) (directory.Result[Post], error) {
	if f.Sort == "" {
		f.Sort = DefaultSort
	}
	if _, err := f.Sort.OrderClause(sortColumns); err != nil {
		return directory.Result[Post]{}, err
	}

	posts, err := cache.GetOrLoad(ctx, s.cache, CacheKeyPrefix+string(f.Sort), func(ctx context.Context) ([]Post, error) {
		return s.repo.List(ctx, f.Sort)
	})
	if err != nil {
		s.logger.Error("Failed to load posts", zap.Error(err))
	}
	result := directory.NewResult(posts, err, f.Facets()...)
	s.metrics.ObserveDirectoryQuery(screenName, result.LoadFailed)
	return result, nil
}

// Create publishes a post for author and invalidates the cached collections.
func (s *ServiceImplementation) Create(ctx context.Context, author *user.User, req CreatePostRequest) (*Post, error) {
	if author == nil {
		return nil, common.ErrUnauthorized
	}
	p := &Post{
		Title:       sanitize.PlainText(req.Title),
		Content:     sanitize.RichText(req.Content),
		PostType:    strings.TrimSpace(req.PostType),
		Tags:        common.NormalizeTags(req.Tags),
		IsAnonymous: req.IsAnonymous,
		AuthorName:  author.PublicName("Community Member"),
	}
	if req.IsAnonymous {
		p.AuthorName = AnonymousAuthor
	}
	authorID := author.ID
	p.AuthorID = &authorID

	if p.Title == "" || p.Content == "" {
		return nil, common.NewValidationAPIError(map[string]string{
			"post": "Title and content must contain text.",
		})
	}

	err := s.repo.Create(ctx, p)
	s.metrics.ObserveMutation("post", err)
	if err != nil {
		s.logger.Error("Failed to create post", zap.Error(err), zap.String("authorID", authorID.String()))
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyPrefix)
	s.logger.Info("Post created", zap.String("postID", p.ID.String()), zap.String("type", p.PostType))
	return p, nil
}
