package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-console/internal/submission"
	"github.com/jonathan/talent-console/internal/types"
)

func TestPrintResource(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &types.Resource{
		ID:       "r1",
		Name:     "Ada Lovelace",
		Category: "Engineering",
		Skills:   []string{"Go", "Kubernetes"},
		Experience: types.Experience{
			Years: 7,
			Level: types.LevelSenior,
		},
		Availability: types.Availability{Status: types.StatusAvailable},
		Rate:         types.Rate{Hourly: 120, Currency: "USD"},
		Attachment: &types.AttachmentRef{
			FileID:       "f1",
			OriginalName: "cv.pdf",
			Size:         1024,
		},
	}

	p.PrintResource(res)
	output := buf.String()

	assert.Contains(t, output, "RESOURCE r1")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "cv.pdf")
	assert.Contains(t, output, "120 USD/hr")
}

func TestPrintResource_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResource(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResource_NoAttachment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResource(&types.Resource{ID: "r1", Name: "Ada"})

	assert.Contains(t, buf.String(), "File:      none")
}

func TestPrintResourceList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []types.Resource{
		{ID: "r1", Name: "Ada", Availability: types.Availability{Status: types.StatusAvailable}},
		{ID: "r2", Name: "Grace", Availability: types.Availability{Status: types.StatusUnavailable}},
	}
	page := types.Pagination{Page: 1, Limit: 10, Total: 12, TotalPages: 2}

	p.PrintResourceList(items, page)
	output := buf.String()

	assert.Contains(t, output, "RESOURCES")
	assert.Contains(t, output, "Showing 2 of 12")
	assert.Contains(t, output, "Ada")
	assert.Contains(t, output, "Page 1/2")
}

func TestPrintResourceList_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.Resource, 8)
	for i := range items {
		items[i] = types.Resource{ID: "r", Name: "Resource"}
	}

	p.PrintResourceList(items, types.Pagination{Page: 1, Total: 8, TotalPages: 1})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintOutcome_Success(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(submission.Outcome{
		Mode:       submission.ModeCreate,
		ResourceID: "r-new",
		Resource:   &types.Resource{ID: "r-new"},
	})
	output := buf.String()

	assert.Contains(t, output, "SUBMISSION COMPLETE")
	assert.Contains(t, output, "Create succeeded")
	assert.Contains(t, output, "r-new")
}

func TestPrintOutcome_FailureShowsStageGuidance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(submission.Outcome{
		Mode:       submission.ModeUpdate,
		ResourceID: "r1",
		Stage:      submission.StageFileUpload,
		Err:        errors.New("file too large"),
	})
	output := buf.String()

	assert.Contains(t, output, "SUBMISSION FAILED")
	assert.Contains(t, output, "Update failed")
	assert.Contains(t, output, string(submission.StageFileUpload))
	assert.Contains(t, output, "file too large")
	// Guidance text is stage-specific; each failure mode reads differently.
	assert.Contains(t, output, "the file upload failed")
}

func TestPrintVendorSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []types.VendorSkill{
		{ID: "v1", SkillName: "Terraform", Status: "pending", VendorName: "Acme"},
		{ID: "v2", SkillName: "Pulumi", Status: "rejected", VendorName: "Acme", Reason: "duplicate of Terraform"},
	}

	p.PrintVendorSkills(items, types.Pagination{Page: 1, Total: 2, TotalPages: 1})
	output := buf.String()

	assert.Contains(t, output, "VENDOR SKILL SUBMISSIONS")
	assert.Contains(t, output, "Terraform")
	assert.Contains(t, output, "rejected")
	assert.Contains(t, output, "reason: duplicate of Terraform")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []types.Skill{
		{ID: "s1", Name: "Go", Category: "Languages"},
		{ID: "s2", Name: "Kubernetes"},
	}

	p.PrintSkills(items, types.Pagination{Page: 1, Total: 2, TotalPages: 1})
	output := buf.String()

	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Go (Languages)")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintCategories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []types.Category{{ID: "c1", Name: "Engineering"}}

	p.PrintCategories(items, types.Pagination{Page: 1, Total: 1, TotalPages: 1})

	assert.Contains(t, buf.String(), "CATEGORIES")
	assert.Contains(t, buf.String(), "Engineering")
}
