package approvals

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-console/internal/listcache"
	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/types"
)

// Moderator is the subset of the backend client the service needs.
// *remote.Client satisfies it.
type Moderator interface {
	ListVendorSkills(ctx context.Context, params remote.ListParams) ([]types.VendorSkill, types.Pagination, error)
	ApproveVendorSkill(ctx context.Context, id string) (*types.VendorSkill, error)
	RejectVendorSkill(ctx context.Context, id, reason string) (*types.VendorSkill, error)
	DeleteVendorSkill(ctx context.Context, id string) error
}

// Service moderates vendor skills against the backend and keeps a page
// cache in sync. The cache is the single source of truth for any view
// over this collection; mutations go through the service only.
type Service struct {
	client Moderator
	cache  *listcache.Cache[types.VendorSkill]
}

// NewService creates a moderation service with its own empty cache.
func NewService(client Moderator) *Service {
	return &Service{
		client: client,
		cache:  listcache.New[types.VendorSkill](),
	}
}

// Cache exposes the read side for views.
func (s *Service) Cache() *listcache.Cache[types.VendorSkill] { return s.cache }

// LoadPage fetches one page from the backend and replaces the cache.
func (s *Service) LoadPage(ctx context.Context, params remote.ListParams) error {
	items, page, err := s.client.ListVendorSkills(ctx, params)
	if err != nil {
		return err
	}
	s.cache.ReplacePage(items, page)
	return nil
}

// Approve approves a pending entry. The remote call happens first; the
// cache is spliced only after the backend confirms.
func (s *Service) Approve(ctx context.Context, id string) (*types.VendorSkill, error) {
	if err := s.checkTransition(id, StatusApproved); err != nil {
		return nil, err
	}
	updated, err := s.client.ApproveVendorSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.ApplyUpdated(*updated)
	return updated, nil
}

// Reject rejects a pending entry with a reason.
func (s *Service) Reject(ctx context.Context, id, reason string) (*types.VendorSkill, error) {
	if reason == "" {
		return nil, fmt.Errorf("a rejection reason is required")
	}
	if err := s.checkTransition(id, StatusRejected); err != nil {
		return nil, err
	}
	updated, err := s.client.RejectVendorSkill(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.cache.ApplyUpdated(*updated)
	return updated, nil
}

// Remove deletes an entry and removes it from the cache. Returns whether
// the now-empty page should make the caller navigate back.
func (s *Service) Remove(ctx context.Context, id string) (listcache.RemoveResult, error) {
	if err := s.client.DeleteVendorSkill(ctx, id); err != nil {
		return listcache.RemoveResult{}, err
	}
	return s.cache.ApplyRemoved(id), nil
}

// checkTransition rejects moderation of entries the cached page already
// shows as terminal. The backend remains authoritative; this only saves a
// doomed round trip. Entries not on the current page pass through.
func (s *Service) checkTransition(id string, to Status) error {
	cached, ok := s.cache.Get(id)
	if !ok {
		return nil
	}
	from, err := ParseStatus(cached.Status)
	if err != nil {
		return nil // unknown local status, let the backend decide
	}
	if !IsTransitionAllowed(from, to) {
		return fmt.Errorf("vendor skill %s is already %s", id, from)
	}
	return nil
}

// Pending returns the cached entries awaiting moderation.
func (s *Service) Pending() []types.VendorSkill { return s.FilterStatus(StatusPending) }

// Approved returns the cached approved entries.
func (s *Service) Approved() []types.VendorSkill { return s.FilterStatus(StatusApproved) }

// Rejected returns the cached rejected entries.
func (s *Service) Rejected() []types.VendorSkill { return s.FilterStatus(StatusRejected) }

// FilterStatus is a pure projection over the cache; it never mutates it.
func (s *Service) FilterStatus(status Status) []types.VendorSkill {
	return s.cache.Filter(func(v types.VendorSkill) bool {
		return v.Status == string(status)
	})
}
