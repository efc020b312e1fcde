// Package refdata loads and holds the skills and categories reference
// lists. Both lists load asynchronously in unspecified order; consumers
// that need them together (populating an edit form, rendering names)
// register on an explicit barrier instead of re-checking from each load
// callback.
package refdata

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-console/internal/types"
)

// Source is the subset of the backend client the loader needs.
// *remote.Client satisfies it.
type Source interface {
	ListSkills(ctx context.Context) ([]types.Skill, error)
	ListCategories(ctx context.Context) ([]types.Category, error)
}

// Loader fetches and caches the two reference lists and runs deferred
// callbacks once both have completed their initial load.
type Loader struct {
	source Source

	mu               sync.Mutex
	skills           []types.Skill
	categories       []types.Category
	skillsLoaded     bool
	categoriesLoaded bool
	pending          []func()
}

// NewLoader creates a loader over the given source. Nothing is fetched
// until Load is called.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load fetches both reference lists concurrently. Each list marks itself
// ready as soon as its own fetch completes; deferred callbacks fire when
// the second one lands. A failed Load leaves readiness unchanged and can
// be retried.
func (l *Loader) Load(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		skills, err := l.source.ListSkills(gCtx)
		if err != nil {
			return err
		}
		l.markSkillsLoaded(skills)
		return nil
	})

	g.Go(func() error {
		categories, err := l.source.ListCategories(gCtx)
		if err != nil {
			return err
		}
		l.markCategoriesLoaded(categories)
		return nil
	})

	return g.Wait()
}

func (l *Loader) markSkillsLoaded(skills []types.Skill) {
	l.mu.Lock()
	l.skills = skills
	l.skillsLoaded = true
	callbacks := l.takeCallbacksLocked()
	l.mu.Unlock()
	run(callbacks)
}

func (l *Loader) markCategoriesLoaded(categories []types.Category) {
	l.mu.Lock()
	l.categories = categories
	l.categoriesLoaded = true
	callbacks := l.takeCallbacksLocked()
	l.mu.Unlock()
	run(callbacks)
}

// takeCallbacksLocked drains the pending callbacks when both flags are
// set. Must be called with the lock held.
func (l *Loader) takeCallbacksLocked() []func() {
	if !l.skillsLoaded || !l.categoriesLoaded {
		return nil
	}
	callbacks := l.pending
	l.pending = nil
	return callbacks
}

func run(callbacks []func()) {
	for _, fn := range callbacks {
		fn()
	}
}

// OnReady runs fn once both reference lists have loaded. If they already
// have, fn runs immediately on the calling goroutine. Each registered fn
// runs at most once.
func (l *Loader) OnReady(fn func()) {
	l.mu.Lock()
	if l.skillsLoaded && l.categoriesLoaded {
		l.mu.Unlock()
		fn()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Ready reports whether both reference lists have completed their initial
// fetch.
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.skillsLoaded && l.categoriesLoaded
}

// Skills returns a copy of the loaded skills list.
func (l *Loader) Skills() []types.Skill {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]types.Skill(nil), l.skills...)
}

// Categories returns a copy of the loaded categories list.
func (l *Loader) Categories() []types.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]types.Category(nil), l.categories...)
}

// SkillName resolves a skill id to its display name, falling back to the
// id itself when unknown.
func (l *Loader) SkillName(id string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.skills {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// CategoryName resolves a category id to its display name, falling back
// to the id itself when unknown.
func (l *Loader) CategoryName(id string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
