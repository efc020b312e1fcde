// Package submission drives the multi-step write of a resource record:
// create or update the record, optionally upload an attachment and patch
// its pointer, or explicitly clear a removed attachment. Each remote call
// can fail independently, so every terminal failure carries the stage it
// died in.
//
// Stage graph for one submission:
//
//	resourceWrite ──► fileUpload ──► attachmentPatch ──► done
//	      │                                               ▲
//	      ├──► attachmentClear ───────────────────────────┤
//	      └──────────────────────────────────────────────-┘
//
// The branch after resourceWrite is three-way because attachment mutation
// is optional: add a new file, clear a removed one, or leave it untouched.
// The upload must precede the patch because the patch needs the uploaded
// file's id.
package submission

// Stage identifies one step of the submission. Failures are reported with
// the stage they occurred in; collapsing them into one generic error loses
// the distinction between "nothing saved" and "saved without attachment".
type Stage string

const (
	// StageValidation is the local pre-flight check. No network call has
	// been made; the draft is intact and resubmission is safe.
	StageValidation Stage = "validation"
	// StageResourceWrite is the create or update of the resource record.
	StageResourceWrite Stage = "resourceWrite"
	// StageFileUpload uploads the pending local file. The resource write
	// has already committed when this stage runs.
	StageFileUpload Stage = "fileUpload"
	// StageAttachmentPatch links the uploaded file to the resource.
	// Resource and file both exist remotely; only the link is missing on
	// failure.
	StageAttachmentPatch Stage = "attachmentPatch"
	// StageAttachmentClear removes a stale attachment pointer after the
	// user removed the file in an edit session.
	StageAttachmentClear Stage = "attachmentClear"

	// stageDone is the internal terminal marker for the follow-up
	// decision; it is never reported on an Outcome.
	stageDone Stage = "done"
)

// stageSuccessors lists every allowed stage order. The table exists so the
// branch matrix is enumerable in one place and checkable by tests.
var stageSuccessors = map[Stage][]Stage{
	StageValidation:      {StageResourceWrite},
	StageResourceWrite:   {StageFileUpload, StageAttachmentClear, stageDone},
	StageFileUpload:      {StageAttachmentPatch},
	StageAttachmentPatch: {stageDone},
	StageAttachmentClear: {stageDone},
}

// isSuccessor reports whether moving from → to is a legal stage order.
func isSuccessor(from, to Stage) bool {
	for _, s := range stageSuccessors[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Guidance returns the user-facing consequence of a failure at this stage,
// so callers can render stage-specific messages instead of a catch-all.
func (s Stage) Guidance() string {
	switch s {
	case StageValidation:
		return "the form has invalid fields; nothing was sent"
	case StageResourceWrite:
		return "the resource was not saved; fix the error and submit again"
	case StageFileUpload:
		return "the resource was saved but the file upload failed; retry attaching the file"
	case StageAttachmentPatch:
		return "the resource and file were saved but could not be linked; retry attaching the file"
	case StageAttachmentClear:
		return "the resource was saved but the removed attachment is still linked; retry removing it"
	default:
		return "submission failed"
	}
}
