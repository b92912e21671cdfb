package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
)

// Cache is the read-through cache for meeting documents. Implementations
// are best-effort; every method may fail without affecting correctness.
type Cache interface {
	GetMeeting(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error)
	SetMeeting(ctx context.Context, meeting *entities.Meeting) error
	InvalidateMeeting(ctx context.Context, workspaceID, meetingID string) error
}

// Service drives the meeting update pipeline: normalize, diff, record a
// revision, sync canonical entities. Restores re-enter the same pipeline.
type Service struct {
	meetingRepo  repositories.MeetingRepository
	revisionRepo repositories.RevisionRepository
	decisionRepo repositories.DecisionRepository
	actionRepo   repositories.ActionRepository
	historyRepo  repositories.HistoryRepository
	cache        Cache
	notifier     MentionNotifier
	logger       *zap.Logger
	now          func() time.Time
}

// NewService creates a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	revisionRepo repositories.RevisionRepository,
	decisionRepo repositories.DecisionRepository,
	actionRepo repositories.ActionRepository,
	historyRepo repositories.HistoryRepository,
	cache Cache,
	notifier MentionNotifier,
	logger *zap.Logger,
) *Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		meetingRepo:  meetingRepo,
		revisionRepo: revisionRepo,
		decisionRepo: decisionRepo,
		actionRepo:   actionRepo,
		historyRepo:  historyRepo,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// UpdateInput is the single update entry point's input. RestoreFromRevisionID
// takes precedence over Meeting when both are supplied.
type UpdateInput struct {
	WorkspaceID           string
	MeetingID             string
	Meeting               interface{}
	RestoreFromRevisionID string
	Actor                 entities.Actor
}

// UpdateResult reports the outcome of an update or restore.
type UpdateResult struct {
	Meeting       *entities.Meeting
	RevisionID    string
	Revision      int
	ChangedFields []string
	Summary       string
	NoOp          bool
	DroppedItems  int
	RestoredFrom  string
	EventType     entities.RevisionEventType
}

// ApplyUpdate applies one full-meeting payload or one restore against a
// meeting. Validation and authorization failures short-circuit before any
// write; a no-op payload (nothing meaningfully changed) performs zero writes
// and returns the live record.
func (s *Service) ApplyUpdate(ctx context.Context, in UpdateInput) (*UpdateResult, error) {
	if in.Actor.UID == "" {
		return nil, usecaseErrors.ErrMissingIdentity
	}

	restore := in.RestoreFromRevisionID != ""
	if restore {
		return s.applyRestore(ctx, in)
	}

	if in.Meeting == nil {
		return nil, usecaseErrors.ErrEmptyUpdate
	}
	if !roleCanEdit(in.Actor.Role) {
		return nil, usecaseErrors.ErrEditorRequired
	}

	next, droppedCount := Normalize(in.Meeting)
	if next == nil {
		return nil, usecaseErrors.ErrInvalidPayload
	}

	current, err := s.loadMeeting(ctx, in.WorkspaceID, in.MeetingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLock(current, in.Actor); err != nil {
		return nil, err
	}

	var prev *entities.MeetingSnapshot
	if current != nil {
		prev, err = current.Snapshot()
		if err != nil {
			return nil, fmt.Errorf("failed to decode live meeting snapshot: %w", err)
		}
	}

	d := Compare(prev, next)
	if current != nil && !d.Changed {
		s.logger.Debug("meeting update is a no-op",
			zap.String("meeting_id", in.MeetingID),
			zap.Int("revision", current.Revision),
		)
		return &UpdateResult{
			Meeting:       current,
			Revision:      current.Revision,
			ChangedFields: []string{},
			Summary:       d.Summary(),
			NoOp:          true,
			DroppedItems:  droppedCount,
		}, nil
	}

	eventType := entities.RevisionEventUpdated
	nextRevision := 1
	if current == nil {
		eventType = entities.RevisionEventCreated
	} else {
		nextRevision = current.Revision + 1
	}

	result, err := s.commit(ctx, commitInput{
		workspaceID:  in.WorkspaceID,
		meetingID:    in.MeetingID,
		current:      current,
		next:         next,
		fields:       d.Fields,
		summary:      d.Summary(),
		revision:     nextRevision,
		eventType:    eventType,
		source:       entities.RevisionSourceMeetingUpdate,
		updateEvent:  entities.HistoryEventUpdated,
		actor:        in.Actor,
		restoredFrom: "",
	})
	if err != nil {
		return nil, err
	}
	result.DroppedItems = droppedCount
	return result, nil
}

// applyRestore rehydrates a stored snapshot and re-applies it through the
// normal pipeline as a brand-new revision. Prior revision rows are never
// mutated or removed.
func (s *Service) applyRestore(ctx context.Context, in UpdateInput) (*UpdateResult, error) {
	if !roleCanRestore(in.Actor.Role) {
		return nil, usecaseErrors.ErrAdminRequired
	}

	current, err := s.loadMeeting(ctx, in.WorkspaceID, in.MeetingID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	if err := s.checkLock(current, in.Actor); err != nil {
		return nil, err
	}

	stored, err := s.revisionRepo.FindByID(ctx, in.WorkspaceID, in.MeetingID, in.RestoreFromRevisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("failed to load revision: %w", err)
	}

	raw, err := stored.DecodeSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored snapshot: %w", err)
	}

	// Re-normalize the stored snapshot so old rows written under looser
	// rules still come out structurally complete.
	rehydrated, _ := Normalize(snapshotToPayload(raw))
	if rehydrated == nil {
		return nil, usecaseErrors.ErrInvalidPayload
	}

	prev, err := current.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to decode live meeting snapshot: %w", err)
	}

	// The audit row diffs the restored snapshot against the current live
	// meeting, not the historical predecessor.
	d := Compare(prev, rehydrated)
	fields := d.Fields
	summary := d.Summary()
	if !d.Changed {
		fields = []string{RestoredSentinel}
		summary = "Restored snapshot"
	}

	// Forward progress regardless of how far back the target revision is.
	nextRevision := maxInt(current.Revision+1, stored.MeetingRevision+1, 1)

	return s.commit(ctx, commitInput{
		workspaceID:  in.WorkspaceID,
		meetingID:    in.MeetingID,
		current:      current,
		next:         rehydrated,
		fields:       fields,
		summary:      summary,
		revision:     nextRevision,
		eventType:    entities.RevisionEventRestored,
		source:       entities.RevisionSourceRestore,
		updateEvent:  entities.HistoryEventRestored,
		actor:        in.Actor,
		restoredFrom: stored.ID,
	})
}

type commitInput struct {
	workspaceID  string
	meetingID    string
	current      *entities.Meeting
	next         *entities.MeetingSnapshot
	fields       []string
	summary      string
	revision     int
	eventType    entities.RevisionEventType
	source       entities.RevisionSource
	updateEvent  entities.HistoryEventType
	actor        entities.Actor
	restoredFrom string
}

// commit persists the meeting root, appends the revision row, then runs the
// canonical sync loop. A failure after the root write surfaces as one
// generic sync failure; earlier writes stay committed (see the concurrency
// model: each entity write is independently idempotent).
func (s *Service) commit(ctx context.Context, in commitInput) (*UpdateResult, error) {
	now := s.now().UTC()

	m := in.current
	created := m == nil
	if created {
		m = &entities.Meeting{
			ID:          in.meetingID,
			WorkspaceID: in.workspaceID,
			CreatedAt:   now,
			CreatedBy:   in.actor.UID,
		}
	}
	if err := m.ApplySnapshot(in.next); err != nil {
		return nil, fmt.Errorf("failed to encode meeting snapshot: %w", err)
	}
	m.Revision = in.revision
	m.UpdatedAt = now
	m.UpdatedBy = in.actor.UID

	if created {
		if err := s.meetingRepo.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to create meeting: %w", err)
		}
	} else {
		if err := s.meetingRepo.Update(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to update meeting: %w", err)
		}
	}

	revision, err := s.appendRevision(ctx, m, in, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrRevisionWrite, err)
	}

	if err := s.syncCanonical(ctx, in.workspaceID, in.meetingID, in.next, in.actor, in.updateEvent, now); err != nil {
		s.logger.Error("canonical sync failed",
			zap.String("meeting_id", in.meetingID),
			zap.Int("revision", in.revision),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrSyncFailed, err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateMeeting(ctx, in.workspaceID, in.meetingID); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("meeting_id", in.meetingID), zap.Error(err))
		}
	}

	s.logger.Info("meeting saved",
		zap.String("meeting_id", in.meetingID),
		zap.Int("revision", in.revision),
		zap.String("event_type", string(in.eventType)),
		zap.Strings("changed_fields", in.fields),
	)

	return &UpdateResult{
		Meeting:       m,
		RevisionID:    revision.ID,
		Revision:      in.revision,
		ChangedFields: in.fields,
		Summary:       in.summary,
		RestoredFrom:  in.restoredFrom,
		EventType:     in.eventType,
	}, nil
}

func (s *Service) appendRevision(ctx context.Context, m *entities.Meeting, in commitInput, now time.Time) (*entities.MeetingRevision, error) {
	snapRaw, err := json.Marshal(in.next)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	fieldsRaw, err := json.Marshal(in.fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode changed fields: %w", err)
	}

	// The column is uuid-typed; only restores carry a value, everything
	// else must bind NULL rather than "".
	var restoredFrom *string
	if in.restoredFrom != "" {
		restoredFrom = &in.restoredFrom
	}

	revision := &entities.MeetingRevision{
		ID:                     uuid.New().String(),
		MeetingID:              in.meetingID,
		WorkspaceID:            in.workspaceID,
		Source:                 in.source,
		EventType:              in.eventType,
		ChangedFields:          fieldsRaw,
		Summary:                in.summary,
		MeetingRevision:        in.revision,
		ActorUID:               in.actor.UID,
		ActorName:              in.actor.Name,
		CapturedAt:             now,
		RestoredFromRevisionID: restoredFrom,
		Snapshot:               snapRaw,
	}
	if err := s.revisionRepo.Append(ctx, revision); err != nil {
		return nil, err
	}
	return revision, nil
}

// GetMeeting retrieves a meeting, serving from the cache when possible.
func (s *Service) GetMeeting(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error) {
	if s.cache != nil {
		if m, err := s.cache.GetMeeting(ctx, workspaceID, meetingID); err == nil && m != nil {
			return m, nil
		}
	}

	m, err := s.loadMeeting(ctx, workspaceID, meetingID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, usecaseErrors.ErrMeetingNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetMeeting(ctx, m); err != nil {
			s.logger.Debug("cache write failed", zap.String("meeting_id", meetingID), zap.Error(err))
		}
	}
	return m, nil
}

// GetRevision retrieves one revision row.
func (s *Service) GetRevision(ctx context.Context, workspaceID, meetingID, revisionID string) (*entities.MeetingRevision, error) {
	r, err := s.revisionRepo.FindByID(ctx, workspaceID, meetingID, revisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("failed to get revision: %w", err)
	}
	return r, nil
}

// ListRevisions retrieves the revision log newest first.
func (s *Service) ListRevisions(ctx context.Context, workspaceID, meetingID string, limit, offset int) ([]*entities.MeetingRevision, int64, error) {
	revisions, total, err := s.revisionRepo.ListByMeeting(ctx, workspaceID, meetingID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list revisions: %w", err)
	}
	return revisions, total, nil
}

func (s *Service) loadMeeting(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, workspaceID, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// checkLock rejects content operations against a locked meeting unless the
// actor is an admin. Admins may also flip the flag itself, which is how a
// meeting gets unlocked.
func (s *Service) checkLock(current *entities.Meeting, actor entities.Actor) error {
	if current == nil || !current.IsLocked() {
		return nil
	}
	if actor.Role == entities.MemberRoleAdmin {
		return nil
	}
	return usecaseErrors.ErrMeetingLocked
}

func roleCanEdit(role entities.MemberRole) bool {
	return role == entities.MemberRoleEditor || role == entities.MemberRoleAdmin
}

func roleCanRestore(role entities.MemberRole) bool {
	return role == entities.MemberRoleAdmin
}

// snapshotToPayload round-trips a snapshot through generic JSON so it can be
// fed back into Normalize.
func snapshotToPayload(snap *entities.MeetingSnapshot) interface{} {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil
	}
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

func maxInt(values ...int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
