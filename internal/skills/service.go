// Package skills provides the admin service for the skills and categories
// reference lists: create, update, and delete against the backend with the
// local caches spliced in place after each confirmed write.
package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talent-console/internal/listcache"
	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/types"
)

// Store is the subset of the backend client the service needs.
// *remote.Client satisfies it.
type Store interface {
	ListSkills(ctx context.Context) ([]types.Skill, error)
	CreateSkill(ctx context.Context, payload remote.SkillPayload) (*types.Skill, error)
	UpdateSkill(ctx context.Context, id string, payload remote.SkillPayload) (*types.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]types.Category, error)
	CreateCategory(ctx context.Context, payload remote.CategoryPayload) (*types.Category, error)
}

// Service administers the two reference collections. Each collection has
// one cache, mutated only here and only after the backend confirms.
type Service struct {
	client     Store
	skills     *listcache.Cache[types.Skill]
	categories *listcache.Cache[types.Category]
}

// NewService creates a skills admin service with empty caches.
func NewService(client Store) *Service {
	return &Service{
		client:     client,
		skills:     listcache.New[types.Skill](),
		categories: listcache.New[types.Category](),
	}
}

// Skills exposes the skills cache read side.
func (s *Service) Skills() *listcache.Cache[types.Skill] { return s.skills }

// Categories exposes the categories cache read side.
func (s *Service) Categories() *listcache.Cache[types.Category] { return s.categories }

// LoadSkills fetches the full skills list. Reference lists are not
// paginated by the backend; the cache holds them as a single page.
func (s *Service) LoadSkills(ctx context.Context) error {
	items, err := s.client.ListSkills(ctx)
	if err != nil {
		return err
	}
	s.skills.ReplacePage(items, singlePage(len(items)))
	return nil
}

// LoadCategories fetches the full categories list.
func (s *Service) LoadCategories(ctx context.Context) error {
	items, err := s.client.ListCategories(ctx)
	if err != nil {
		return err
	}
	s.categories.ReplacePage(items, singlePage(len(items)))
	return nil
}

// CreateSkill adds a skill after a local duplicate-name check. The check
// only covers the cached list; the backend stays authoritative.
func (s *Service) CreateSkill(ctx context.Context, payload remote.SkillPayload) (*types.Skill, error) {
	if payload.Name == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if s.skillNameExists(payload.Name) {
		return nil, fmt.Errorf("a skill named %q already exists", payload.Name)
	}
	created, err := s.client.CreateSkill(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.skills.ApplyCreated(*created)
	return created, nil
}

// UpdateSkill updates a skill and splices the result in place.
func (s *Service) UpdateSkill(ctx context.Context, id string, payload remote.SkillPayload) (*types.Skill, error) {
	updated, err := s.client.UpdateSkill(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.skills.ApplyUpdated(*updated)
	return updated, nil
}

// DeleteSkill removes a skill remotely, then from the cache.
func (s *Service) DeleteSkill(ctx context.Context, id string) error {
	if err := s.client.DeleteSkill(ctx, id); err != nil {
		return err
	}
	s.skills.ApplyRemoved(id)
	return nil
}

// CreateCategory adds a category after a local duplicate-name check.
func (s *Service) CreateCategory(ctx context.Context, payload remote.CategoryPayload) (*types.Category, error) {
	if payload.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if s.categoryNameExists(payload.Name) {
		return nil, fmt.Errorf("a category named %q already exists", payload.Name)
	}
	created, err := s.client.CreateCategory(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.categories.ApplyCreated(*created)
	return created, nil
}

// SearchSkills is a pure projection: cached skills whose name contains
// the term, case-insensitively.
func (s *Service) SearchSkills(term string) []types.Skill {
	needle := strings.ToLower(term)
	return s.skills.Filter(func(skill types.Skill) bool {
		return strings.Contains(strings.ToLower(skill.Name), needle)
	})
}

func (s *Service) skillNameExists(name string) bool {
	return len(s.skills.Filter(func(skill types.Skill) bool {
		return strings.EqualFold(skill.Name, name)
	})) > 0
}

func (s *Service) categoryNameExists(name string) bool {
	return len(s.categories.Filter(func(category types.Category) bool {
		return strings.EqualFold(category.Name, name)
	})) > 0
}

func singlePage(count int) types.Pagination {
	return types.Pagination{Page: 1, Limit: count, Total: count, TotalPages: 1}
}
