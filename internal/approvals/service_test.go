package approvals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/types"
)

type fakeModerator struct {
	items     []types.VendorSkill
	page      types.Pagination
	listErr   error
	actionErr error
	calls     []string
}

func (f *fakeModerator) ListVendorSkills(_ context.Context, _ remote.ListParams) ([]types.VendorSkill, types.Pagination, error) {
	f.calls = append(f.calls, "list")
	return f.items, f.page, f.listErr
}

func (f *fakeModerator) ApproveVendorSkill(_ context.Context, id string) (*types.VendorSkill, error) {
	f.calls = append(f.calls, "approve:"+id)
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	return &types.VendorSkill{ID: id, SkillName: "Go", Status: "approved"}, nil
}

func (f *fakeModerator) RejectVendorSkill(_ context.Context, id, reason string) (*types.VendorSkill, error) {
	f.calls = append(f.calls, "reject:"+id)
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	return &types.VendorSkill{ID: id, SkillName: "Go", Status: "rejected", Reason: reason}, nil
}

func (f *fakeModerator) DeleteVendorSkill(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.actionErr
}

func loadedService(t *testing.T, mod *fakeModerator) *Service {
	t.Helper()
	svc := NewService(mod)
	require.NoError(t, svc.LoadPage(context.Background(), remote.ListParams{Page: 1, Limit: 10}))
	return svc
}

func vendorPage() *fakeModerator {
	return &fakeModerator{
		items: []types.VendorSkill{
			{ID: "v1", SkillName: "Go", Status: "pending"},
			{ID: "v2", SkillName: "Rust", Status: "pending"},
			{ID: "v3", SkillName: "COBOL", Status: "rejected"},
		},
		page: types.Pagination{Page: 1, Limit: 10, Total: 3, TotalPages: 1},
	}
}

func TestApprove_SplicesCache(t *testing.T) {
	mod := vendorPage()
	svc := loadedService(t, mod)

	updated, err := svc.Approve(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)

	cached, ok := svc.Cache().Get("v1")
	require.True(t, ok)
	assert.Equal(t, "approved", cached.Status)
	assert.Equal(t, 3, svc.Cache().Pagination().Total, "approval does not change totals")
	assert.Len(t, svc.Pending(), 1)
	assert.Len(t, svc.Approved(), 1)
}

func TestApprove_RemoteFailureLeavesCacheUntouched(t *testing.T) {
	mod := vendorPage()
	svc := loadedService(t, mod)
	mod.actionErr = errors.New("backend down")

	_, err := svc.Approve(context.Background(), "v1")
	require.Error(t, err)

	cached, _ := svc.Cache().Get("v1")
	assert.Equal(t, "pending", cached.Status)
}

func TestApprove_TerminalEntryRejectedLocally(t *testing.T) {
	mod := vendorPage()
	svc := loadedService(t, mod)

	_, err := svc.Approve(context.Background(), "v3")
	require.Error(t, err)
	assert.NotContains(t, mod.calls, "approve:v3", "doomed transition never reaches the backend")
}

func TestApprove_UncachedEntryDelegatesToBackend(t *testing.T) {
	mod := vendorPage()
	svc := loadedService(t, mod)

	// An entry on another page is not locally checkable.
	updated, err := svc.Approve(context.Background(), "v99")
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)
	// Not on this page: the splice is a no-op, totals unchanged.
	assert.Equal(t, 3, svc.Cache().Pagination().Total)
	assert.Equal(t, 3, svc.Cache().Len())
}

func TestReject_RequiresReason(t *testing.T) {
	svc := loadedService(t, vendorPage())

	_, err := svc.Reject(context.Background(), "v1", "")
	assert.Error(t, err)

	updated, err := svc.Reject(context.Background(), "v1", "duplicate")
	require.NoError(t, err)
	assert.Equal(t, "duplicate", updated.Reason)
	assert.Len(t, svc.Rejected(), 2)
}

func TestRemove_DecrementsAndSignalsNavigation(t *testing.T) {
	mod := &fakeModerator{
		items: []types.VendorSkill{{ID: "v1", SkillName: "Go", Status: "pending"}},
		page:  types.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}
	svc := loadedService(t, mod)

	result, err := svc.Remove(context.Background(), "v1")
	require.NoError(t, err)
	assert.True(t, result.Removed)
	assert.True(t, result.NeedsPreviousPage)
	assert.Equal(t, 10, svc.Cache().Pagination().Total)
}

func TestFilterStatus_PureProjection(t *testing.T) {
	svc := loadedService(t, vendorPage())

	pending := svc.Pending()
	require.Len(t, pending, 2)
	pending[0].Status = "mutated"

	again := svc.Pending()
	assert.Len(t, again, 2)
	assert.Equal(t, 3, svc.Cache().Len())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, IsTransitionAllowed(StatusPending, StatusApproved))
	assert.True(t, IsTransitionAllowed(StatusPending, StatusRejected))
	assert.False(t, IsTransitionAllowed(StatusApproved, StatusRejected))
	assert.False(t, IsTransitionAllowed(StatusRejected, StatusApproved))

	_, err := ParseStatus("pending")
	require.NoError(t, err)
	_, err = ParseStatus("banana")
	assert.Error(t, err)
}
