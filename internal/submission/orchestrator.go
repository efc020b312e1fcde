package submission

import (
	"context"
	"sync/atomic"

	"github.com/jonathan/talent-console/internal/remote"
	"github.com/jonathan/talent-console/internal/types"
)

// Mode selects whether a submission creates a new resource or updates an
// existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// ResourceStore is the subset of the backend client the orchestrator
// needs. *remote.Client satisfies it.
type ResourceStore interface {
	CreateResource(ctx context.Context, payload types.ResourcePayload) (*types.Resource, error)
	UpdateResource(ctx context.Context, id string, payload types.ResourcePayload) (*types.Resource, error)
	UploadFile(ctx context.Context, file *types.LocalFile, ownerType, ownerID string, meta remote.UploadMeta) (*types.AttachmentRef, error)
	PatchResourceAttachment(ctx context.Context, id string, ref *types.AttachmentRef) (*types.Resource, error)
}

// CacheNotifier receives exactly one mutation per successful submission.
// *listcache.Cache[types.Resource] satisfies it.
type CacheNotifier interface {
	ApplyCreated(types.Resource)
	ApplyUpdated(types.Resource) bool
}

// Outcome is the tagged terminal result of one submission.
type Outcome struct {
	Mode       Mode
	ResourceID string
	// Resource is the final server-side record, set on success.
	Resource *types.Resource
	// Stage and Err are set on failure. Stage is always populated so the
	// caller can render stage-specific guidance.
	Stage Stage
	Err   error
}

// Succeeded reports whether the submission reached its terminal Done state.
func (o Outcome) Succeeded() bool { return o.Err == nil }

// Created reports a successful create submission.
func (o Outcome) Created() bool { return o.Succeeded() && o.Mode == ModeCreate }

// Updated reports a successful update submission.
func (o Outcome) Updated() bool { return o.Succeeded() && o.Mode == ModeUpdate }

func failed(mode Mode, resourceID string, stage Stage, cause error) Outcome {
	return Outcome{
		Mode:       mode,
		ResourceID: resourceID,
		Stage:      stage,
		Err:        &StageError{Stage: stage, Cause: cause},
	}
}

// Submitter orchestrates resource submissions. One submitter owns one
// editing session; it allows a single submission in flight at a time.
type Submitter struct {
	store    ResourceStore
	cache    CacheNotifier
	ready    func() bool
	inFlight atomic.Bool
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithCache wires the list cache notified on success. A nil cache is
// allowed: the owning view may already be gone when the saga finishes, in
// which case the terminal transition is a no-op locally.
func WithCache(cache CacheNotifier) Option {
	return func(s *Submitter) { s.cache = cache }
}

// WithReadyCheck gates submissions on reference-data readiness.
func WithReadyCheck(ready func() bool) Option {
	return func(s *Submitter) { s.ready = ready }
}

// NewSubmitter creates a submitter over the given backend store.
func NewSubmitter(store ResourceStore, opts ...Option) *Submitter {
	s := &Submitter{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InFlight reports whether a submission is currently running.
func (s *Submitter) InFlight() bool { return s.inFlight.Load() }

// Submit runs the full submission for one draft. Stages execute strictly
// in order; stage N+1 is never issued before stage N's result is known.
// On success exactly one cache mutation occurs, keyed by mode; on any
// failure the cache is untouched. No stage is retried automatically.
func (s *Submitter) Submit(ctx context.Context, draft *types.ResourceDraft, mode Mode) Outcome {
	if !s.inFlight.CompareAndSwap(false, true) {
		return failed(mode, draft.ResourceID, StageValidation, ErrSubmissionInFlight)
	}
	defer s.inFlight.Store(false)

	// Pre-flight: local checks only, no network on failure.
	if s.ready != nil && !s.ready() {
		return failed(mode, draft.ResourceID, StageValidation, ErrReferenceDataNotReady)
	}
	if mode == ModeUpdate && draft.ResourceID == "" {
		return failed(mode, draft.ResourceID, StageValidation, ErrMissingResourceID)
	}
	if err := draft.Validate(); err != nil {
		return failed(mode, draft.ResourceID, StageValidation, err)
	}

	// Stage: resourceWrite.
	res, err := s.writeResource(ctx, draft, mode)
	if err != nil {
		return failed(mode, draft.ResourceID, StageResourceWrite, err)
	}

	switch followUp(draft, mode) {
	case StageFileUpload:
		res, err = s.attachFile(ctx, draft, res)
	case StageAttachmentClear:
		res, err = s.clearAttachment(ctx, res)
	}
	if err != nil {
		return Outcome{Mode: mode, ResourceID: res.ID, Stage: stageOf(err), Err: err}
	}

	return s.done(mode, res)
}

// followUp decides the stage that runs after a successful resource write.
// The decision depends only on the draft and mode, so the whole branch
// matrix is testable without network calls.
func followUp(draft *types.ResourceDraft, mode Mode) Stage {
	switch {
	case draft.PendingFile != nil:
		return StageFileUpload
	case mode == ModeUpdate && draft.NeedsAttachmentClear():
		return StageAttachmentClear
	default:
		return stageDone
	}
}

func (s *Submitter) writeResource(ctx context.Context, draft *types.ResourceDraft, mode Mode) (*types.Resource, error) {
	if mode == ModeUpdate {
		return s.store.UpdateResource(ctx, draft.ResourceID, draft.Payload())
	}
	return s.store.CreateResource(ctx, draft.Payload())
}

// attachFile runs fileUpload then attachmentPatch. The resource write has
// already committed; failures here leave the record without (or with
// stale) attachment metadata, a genuine partial state the stage tag makes
// visible to the caller.
func (s *Submitter) attachFile(ctx context.Context, draft *types.ResourceDraft, res *types.Resource) (*types.Resource, error) {
	meta := remote.UploadMeta{Category: "attachment", Description: "resource attachment"}
	ref, err := s.store.UploadFile(ctx, draft.PendingFile, "resource", res.ID, meta)
	if err != nil {
		return res, &StageError{Stage: StageFileUpload, Cause: err}
	}

	patched, err := s.store.PatchResourceAttachment(ctx, res.ID, ref)
	if err != nil {
		return res, &StageError{Stage: StageAttachmentPatch, Cause: err}
	}
	return patched, nil
}

func (s *Submitter) clearAttachment(ctx context.Context, res *types.Resource) (*types.Resource, error) {
	cleared, err := s.store.PatchResourceAttachment(ctx, res.ID, nil)
	if err != nil {
		return res, &StageError{Stage: StageAttachmentClear, Cause: err}
	}
	return cleared, nil
}

// done performs the single terminal cache mutation. The cache may be nil
// when the owning view was torn down mid-saga; the notification then
// no-ops instead of crashing.
func (s *Submitter) done(mode Mode, res *types.Resource) Outcome {
	if s.cache != nil {
		if mode == ModeCreate {
			s.cache.ApplyCreated(*res)
		} else {
			s.cache.ApplyUpdated(*res)
		}
	}
	return Outcome{Mode: mode, ResourceID: res.ID, Resource: res}
}

func stageOf(err error) Stage {
	if se, ok := err.(*StageError); ok {
		return se.Stage
	}
	return StageResourceWrite
}
