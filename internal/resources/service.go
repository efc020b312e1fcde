// Package resources wires the resource collection together: the page
// cache views render from, the submission saga that writes drafts, and
// the reference-data barrier that gates edit-form population.
package resources

import (
	"context"

	"github.com/jonathan/talent-console/internal/listcache"
	"github.com/jonathan/talent-console/internal/refdata"
	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/submission"
	"github.com/jonathan/talent-console/internal/types"
)

// Store is the subset of the backend client the service needs.
// *remote.Client satisfies it.
type Store interface {
	submission.ResourceStore
	GetResource(ctx context.Context, id string) (*types.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	ListResources(ctx context.Context, params remote.ListParams) ([]types.Resource, types.Pagination, error)
}

// Service owns one editing session's view of the resource collection.
type Service struct {
	client    Store
	cache     *listcache.Cache[types.Resource]
	refdata   *refdata.Loader
	submitter *submission.Submitter
}

// NewService creates a resource service. The reference loader gates
// submissions and edit-draft population; it may be shared across views.
func NewService(client Store, ref *refdata.Loader) *Service {
	cache := listcache.New[types.Resource]()
	return &Service{
		client:  client,
		cache:   cache,
		refdata: ref,
		submitter: submission.NewSubmitter(client,
			submission.WithCache(cache),
			submission.WithReadyCheck(ref.Ready),
		),
	}
}

// Cache exposes the read side for views.
func (s *Service) Cache() *listcache.Cache[types.Resource] { return s.cache }

// LoadPage fetches one page from the backend and replaces the cache.
func (s *Service) LoadPage(ctx context.Context, params remote.ListParams) error {
	items, page, err := s.client.ListResources(ctx, params)
	if err != nil {
		return err
	}
	s.cache.ReplacePage(items, page)
	return nil
}

// Get fetches a single resource directly from the backend.
func (s *Service) Get(ctx context.Context, id string) (*types.Resource, error) {
	return s.client.GetResource(ctx, id)
}

// NewEditDraft fetches a resource and returns a draft for it. Population
// is deferred until both reference lists have loaded, and runs at most
// once; until then the draft carries only the resource id.
func (s *Service) NewEditDraft(ctx context.Context, id string) (*types.ResourceDraft, error) {
	res, err := s.client.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := types.NewResourceDraft()
	draft.ResourceID = res.ID
	s.refdata.OnReady(func() {
		draft.PopulateFromResource(res)
	})
	return draft, nil
}

// Submit runs the submission saga for a draft. On success the cache has
// already been spliced; the caller only renders the outcome.
func (s *Service) Submit(ctx context.Context, draft *types.ResourceDraft, mode submission.Mode) submission.Outcome {
	return s.submitter.Submit(ctx, draft, mode)
}

// Delete removes a resource remotely, then from the cache.
func (s *Service) Delete(ctx context.Context, id string) (listcache.RemoveResult, error) {
	if err := s.client.DeleteResource(ctx, id); err != nil {
		return listcache.RemoveResult{}, err
	}
	return s.cache.ApplyRemoved(id), nil
}

// FilterAvailability is a pure projection over the cached page.
func (s *Service) FilterAvailability(status types.AvailabilityStatus) []types.Resource {
	return s.cache.Filter(func(r types.Resource) bool {
		return r.Availability.Status == status
	})
}
