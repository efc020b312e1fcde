package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ResourceDraft is the in-memory form state for one resource being created
// or edited. A draft lives for the lifetime of its editing session and is
// discarded afterwards regardless of outcome.
type ResourceDraft struct {
	DraftID uuid.UUID `json:"draft_id"`

	// ResourceID is the backend id of the resource being edited. Empty
	// for create sessions; set by PopulateFromResource.
	ResourceID   string         `json:"resource_id,omitempty"`
	Name         string         `json:"name" validate:"required,min=1"`
	Category     string         `json:"category" validate:"required"`
	Skills       []string       `json:"skills" validate:"required,min=1,dive,required"`
	Experience   Experience     `json:"experience"`
	Location     Location       `json:"location"`
	Availability Availability   `json:"availability"`
	Rate         Rate           `json:"rate"`
	Description  string         `json:"description,omitempty"`

	// PendingFile is a locally selected file not yet uploaded. Rejected
	// files never reach this field; see NewLocalFile.
	PendingFile *LocalFile `json:"-"`

	// Attachment is the attachment currently held by the form. Nil means
	// either the resource never had one or the user removed it.
	Attachment *AttachmentRef `json:"attachment,omitempty"`

	// priorAttachment is the attachment present when the draft was
	// populated from an existing resource. Comparing it against Attachment
	// tells the orchestrator whether an explicit clear is required.
	priorAttachment *AttachmentRef
	populated       bool
}

// NewResourceDraft returns an empty draft for a create session.
func NewResourceDraft() *ResourceDraft {
	return &ResourceDraft{DraftID: uuid.New()}
}

// PopulateFromResource fills the draft from a fetched resource for an edit
// session. It executes at most once per draft; later calls are no-ops so
// that deferred population retried from multiple load callbacks stays
// idempotent.
func (d *ResourceDraft) PopulateFromResource(res *Resource) {
	if d.populated || res == nil {
		return
	}
	d.populated = true

	d.ResourceID = res.ID
	d.Name = res.Name
	d.Category = res.Category
	d.Skills = append([]string(nil), res.Skills...)
	d.Experience = res.Experience
	d.Location = res.Location
	d.Availability = res.Availability
	d.Rate = res.Rate
	d.Description = res.Description
	d.Attachment = res.Attachment
	d.priorAttachment = res.Attachment
}

// Populated reports whether the draft has been filled from a resource.
func (d *ResourceDraft) Populated() bool { return d.populated }

// RemoveAttachment drops the draft's current attachment. If the draft was
// populated from a resource that had one, the next update submission will
// issue an explicit clear.
func (d *ResourceDraft) RemoveAttachment() {
	d.Attachment = nil
}

// PriorAttachment returns the attachment present at population time.
func (d *ResourceDraft) PriorAttachment() *AttachmentRef { return d.priorAttachment }

// NeedsAttachmentClear reports whether the draft's attachment was removed
// relative to the populated resource, requiring an explicit server-side
// clear on update.
func (d *ResourceDraft) NeedsAttachmentClear() bool {
	return d.Attachment == nil && d.priorAttachment != nil
}

// Validate validates the draft using the validator. All range constraints
// on nested blocks are checked as well.
func (d *ResourceDraft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// ResourcePayload is the write payload sent to the backend for create and
// full update calls. Drafts convert to payloads; local-only state (pending
// file, population bookkeeping) never leaves the client.
type ResourcePayload struct {
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Skills       []string     `json:"skills"`
	Experience   Experience   `json:"experience"`
	Location     Location     `json:"location"`
	Availability Availability `json:"availability"`
	Rate         Rate         `json:"rate"`
	Description  string       `json:"description,omitempty"`
}

// Payload converts the draft to its write payload.
func (d *ResourceDraft) Payload() ResourcePayload {
	return ResourcePayload{
		Name:         d.Name,
		Category:     d.Category,
		Skills:       append([]string(nil), d.Skills...),
		Experience:   d.Experience,
		Location:     d.Location,
		Availability: d.Availability,
		Rate:         d.Rate,
		Description:  d.Description,
	}
}
