package skills

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/types"
)

type fakeStore struct {
	skills     []types.Skill
	categories []types.Category
	err        error
	nextID     string
	calls      []string
}

func (f *fakeStore) ListSkills(context.Context) ([]types.Skill, error) {
	f.calls = append(f.calls, "listSkills")
	return f.skills, f.err
}

func (f *fakeStore) CreateSkill(_ context.Context, payload remote.SkillPayload) (*types.Skill, error) {
	f.calls = append(f.calls, "createSkill")
	if f.err != nil {
		return nil, f.err
	}
	return &types.Skill{ID: f.nextID, Name: payload.Name, Category: payload.Category}, nil
}

func (f *fakeStore) UpdateSkill(_ context.Context, id string, payload remote.SkillPayload) (*types.Skill, error) {
	f.calls = append(f.calls, "updateSkill")
	if f.err != nil {
		return nil, f.err
	}
	return &types.Skill{ID: id, Name: payload.Name}, nil
}

func (f *fakeStore) DeleteSkill(_ context.Context, id string) error {
	f.calls = append(f.calls, "deleteSkill:"+id)
	return f.err
}

func (f *fakeStore) ListCategories(context.Context) ([]types.Category, error) {
	f.calls = append(f.calls, "listCategories")
	return f.categories, f.err
}

func (f *fakeStore) CreateCategory(_ context.Context, payload remote.CategoryPayload) (*types.Category, error) {
	f.calls = append(f.calls, "createCategory")
	if f.err != nil {
		return nil, f.err
	}
	return &types.Category{ID: f.nextID, Name: payload.Name}, nil
}

func seededService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{
		skills:     []types.Skill{{ID: "s1", Name: "Go"}, {ID: "s2", Name: "SQL"}},
		categories: []types.Category{{ID: "c1", Name: "Engineering"}},
		nextID:     "new1",
	}
	svc := NewService(store)
	require.NoError(t, svc.LoadSkills(context.Background()))
	require.NoError(t, svc.LoadCategories(context.Background()))
	return svc, store
}

func TestCreateSkill_SplicesCache(t *testing.T) {
	svc, _ := seededService(t)

	created, err := svc.CreateSkill(context.Background(), remote.SkillPayload{Name: "Kubernetes"})
	require.NoError(t, err)
	assert.Equal(t, "new1", created.ID)

	items := svc.Skills().Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Kubernetes", items[0].Name, "new skill is spliced at the head")
	assert.Equal(t, 3, svc.Skills().Pagination().Total)
}

func TestCreateSkill_DuplicateNameRejectedLocally(t *testing.T) {
	svc, store := seededService(t)

	_, err := svc.CreateSkill(context.Background(), remote.SkillPayload{Name: "go"})
	require.Error(t, err)
	assert.NotContains(t, store.calls, "createSkill", "duplicate check avoids the round trip")
}

func TestCreateSkill_EmptyName(t *testing.T) {
	svc, _ := seededService(t)
	_, err := svc.CreateSkill(context.Background(), remote.SkillPayload{})
	assert.Error(t, err)
}

func TestUpdateSkill_AbsentFromCacheIsNoOp(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.UpdateSkill(context.Background(), "s99", remote.SkillPayload{Name: "Zig"})
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Skills().Len(), "unknown id does not grow the cache")
}

func TestDeleteSkill_RemoteFailureKeepsCache(t *testing.T) {
	svc, store := seededService(t)
	store.err = errors.New("in use by resources")

	err := svc.DeleteSkill(context.Background(), "s1")
	require.Error(t, err)
	assert.Equal(t, 2, svc.Skills().Len())
}

func TestDeleteSkill_RemovesFromCache(t *testing.T) {
	svc, _ := seededService(t)

	require.NoError(t, svc.DeleteSkill(context.Background(), "s1"))
	assert.Equal(t, 1, svc.Skills().Len())
	assert.Equal(t, 1, svc.Skills().Pagination().Total)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.CreateCategory(context.Background(), remote.CategoryPayload{Name: "ENGINEERING"})
	assert.Error(t, err)

	created, err := svc.CreateCategory(context.Background(), remote.CategoryPayload{Name: "Design"})
	require.NoError(t, err)
	assert.Equal(t, "Design", created.Name)
	assert.Equal(t, 2, svc.Categories().Len())
}

func TestSearchSkills(t *testing.T) {
	svc, _ := seededService(t)

	assert.Len(t, svc.SearchSkills("go"), 1)
	assert.Len(t, svc.SearchSkills(""), 2)
	assert.Empty(t, svc.SearchSkills("rust"))
}
