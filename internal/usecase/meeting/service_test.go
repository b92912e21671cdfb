package meeting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
)

// In-memory fakes. Each counts writes so tests can assert the zero-write
// no-op guarantee.

type fakeMeetingRepo struct {
	mu       sync.Mutex
	meetings map[string]*entities.Meeting
	writes   int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[string]*entities.Meeting{}}
}

func meetingKey(workspaceID, id string) string { return workspaceID + "/" + id }

func (r *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.meetings[meetingKey(m.WorkspaceID, m.ID)] = &cp
	r.writes++
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, workspaceID, meetingID string) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meetings[meetingKey(workspaceID, meetingID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) Update(_ context.Context, m *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.meetings[meetingKey(m.WorkspaceID, m.ID)] = &cp
	r.writes++
	return nil
}

type fakeRevisionRepo struct {
	mu        sync.Mutex
	revisions []*entities.MeetingRevision
}

func (r *fakeRevisionRepo) Append(_ context.Context, rev *entities.MeetingRevision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rev
	r.revisions = append(r.revisions, &cp)
	return nil
}

func (r *fakeRevisionRepo) FindByID(_ context.Context, workspaceID, meetingID, revisionID string) (*entities.MeetingRevision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rev := range r.revisions {
		if rev.WorkspaceID == workspaceID && rev.MeetingID == meetingID && rev.ID == revisionID {
			cp := *rev
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRevisionRepo) ListByMeeting(_ context.Context, workspaceID, meetingID string, limit, offset int) ([]*entities.MeetingRevision, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.MeetingRevision{}
	for i := len(r.revisions) - 1; i >= 0; i-- {
		rev := r.revisions[i]
		if rev.WorkspaceID == workspaceID && rev.MeetingID == meetingID {
			cp := *rev
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

type fakeDecisionRepo struct {
	mu        sync.Mutex
	decisions map[string]*entities.Decision
	writes    int
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{decisions: map[string]*entities.Decision{}}
}

func (r *fakeDecisionRepo) Create(_ context.Context, d *entities.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.decisions[meetingKey(d.WorkspaceID, d.ID)] = &cp
	r.writes++
	return nil
}

func (r *fakeDecisionRepo) FindByID(_ context.Context, workspaceID, id string) (*entities.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.decisions[meetingKey(workspaceID, id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDecisionRepo) FindByMeetingID(_ context.Context, workspaceID, meetingID string) ([]*entities.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Decision{}
	for _, d := range r.decisions {
		if d.WorkspaceID == workspaceID && d.MeetingID == meetingID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDecisionRepo) Update(_ context.Context, d *entities.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.decisions[meetingKey(d.WorkspaceID, d.ID)] = &cp
	r.writes++
	return nil
}

func (r *fakeDecisionRepo) List(_ context.Context, workspaceID string, _ repositories.EntityFilters) ([]*entities.Decision, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Decision{}
	for _, d := range r.decisions {
		if d.WorkspaceID == workspaceID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

type fakeActionRepo struct {
	mu      sync.Mutex
	actions map[string]*entities.Action
	writes  int
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{actions: map[string]*entities.Action{}}
}

func (r *fakeActionRepo) Create(_ context.Context, a *entities.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.actions[meetingKey(a.WorkspaceID, a.ID)] = &cp
	r.writes++
	return nil
}

func (r *fakeActionRepo) FindByID(_ context.Context, workspaceID, id string) (*entities.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actions[meetingKey(workspaceID, id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeActionRepo) FindByMeetingID(_ context.Context, workspaceID, meetingID string) ([]*entities.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Action{}
	for _, a := range r.actions {
		if a.WorkspaceID == workspaceID && a.MeetingID == meetingID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeActionRepo) Update(_ context.Context, a *entities.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.actions[meetingKey(a.WorkspaceID, a.ID)] = &cp
	r.writes++
	return nil
}

func (r *fakeActionRepo) List(_ context.Context, workspaceID string, _ repositories.EntityFilters) ([]*entities.Action, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Action{}
	for _, a := range r.actions {
		if a.WorkspaceID == workspaceID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

type fakeHistoryRepo struct {
	mu     sync.Mutex
	events []*entities.EntityHistoryEvent
}

func (r *fakeHistoryRepo) Append(_ context.Context, e *entities.EntityHistoryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.events = append(r.events, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByEntity(_ context.Context, workspaceID string, entity entities.HistoryEntity, entityID string, limit, offset int) ([]*entities.EntityHistoryEvent, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.EntityHistoryEvent{}
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.WorkspaceID == workspaceID && e.Entity == entity && e.EntityID == entityID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeHistoryRepo) eventsFor(entity entities.HistoryEntity, entityID string) []*entities.EntityHistoryEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.EntityHistoryEvent{}
	for _, e := range r.events {
		if e.Entity == entity && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out
}

type captureNotifier struct {
	mu            sync.Mutex
	notifications []MentionNotification
}

func (n *captureNotifier) Notify(_ context.Context, m MentionNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, m)
	return nil
}

type testEnv struct {
	svc       *Service
	meetings  *fakeMeetingRepo
	revisions *fakeRevisionRepo
	decisions *fakeDecisionRepo
	actions   *fakeActionRepo
	history   *fakeHistoryRepo
	notifier  *captureNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		meetings:  newFakeMeetingRepo(),
		revisions: &fakeRevisionRepo{},
		decisions: newFakeDecisionRepo(),
		actions:   newFakeActionRepo(),
		history:   &fakeHistoryRepo{},
		notifier:  &captureNotifier{},
	}
	env.svc = NewService(env.meetings, env.revisions, env.decisions, env.actions, env.history, nil, env.notifier, nil)
	env.svc.now = func() time.Time {
		return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	}
	return env
}

var (
	editorActor = entities.Actor{UID: "u-bob", Name: "Bob", Role: entities.MemberRoleEditor}
	adminActor  = entities.Actor{UID: "u-alice", Name: "Alice", Role: entities.MemberRoleAdmin}
	viewerActor = entities.Actor{UID: "u-diana", Name: "Diana", Role: entities.MemberRoleViewer}
)

func basePayload() map[string]interface{} {
	return map[string]interface{}{
		"title": "Sprint Planning",
		"team":  "Platform",
		"decisions": []interface{}{
			map[string]interface{}{"id": "D1", "title": "Adopt trunk-based dev", "statement": "One main branch"},
			map[string]interface{}{"id": "D2", "title": "Ship weekly"},
		},
		"actions": []interface{}{
			map[string]interface{}{"id": "A-1", "title": "Set up CI", "owner": "Bob"},
		},
	}
}

func applyBase(t *testing.T, env *testEnv) *UpdateResult {
	t.Helper()
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1",
		MeetingID:   "m-1",
		Meeting:     basePayload(),
		Actor:       editorActor,
	})
	require.NoError(t, err)
	return res
}

func TestApplyUpdate_CreatesMeetingAtRevisionOne(t *testing.T) {
	env := newTestEnv()
	res := applyBase(t, env)

	assert.Equal(t, 1, res.Revision)
	assert.Equal(t, entities.RevisionEventCreated, res.EventType)
	assert.False(t, res.NoOp)
	assert.NotEmpty(t, res.RevisionID)

	// Canonical entities materialize with provenance
	d, err := env.decisions.FindByID(context.Background(), "ws-1", "D1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", d.MeetingID)
	assert.Equal(t, entities.VisibilityWorkspace, d.Visibility)

	a, err := env.actions.FindByID(context.Background(), "ws-1", "A-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", a.MeetingID)

	// Created history events for every materialized entity
	assert.Len(t, env.history.eventsFor(entities.HistoryEntityDecision, "D1"), 1)
	assert.Len(t, env.history.eventsFor(entities.HistoryEntityAction, "A-1"), 1)
}

func TestApplyUpdate_IdenticalPayloadIsZeroWriteNoOp(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	meetingWrites := env.meetings.writes
	decisionWrites := env.decisions.writes
	actionWrites := env.actions.writes
	revisionCount := len(env.revisions.revisions)

	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1",
		MeetingID:   "m-1",
		Meeting:     basePayload(),
		Actor:       editorActor,
	})
	require.NoError(t, err)

	assert.True(t, res.NoOp)
	assert.Equal(t, 1, res.Revision)
	assert.Empty(t, res.ChangedFields)
	assert.Equal(t, meetingWrites, env.meetings.writes)
	assert.Equal(t, decisionWrites, env.decisions.writes)
	assert.Equal(t, actionWrites, env.actions.writes)
	assert.Len(t, env.revisions.revisions, revisionCount)
}

func TestApplyUpdate_RevisionsAreMonotonic(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	payload := basePayload()
	payload["title"] = "Sprint Planning v2"
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1",
		MeetingID:   "m-1",
		Meeting:     payload,
		Actor:       editorActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Revision)
	assert.Equal(t, entities.RevisionEventUpdated, res.EventType)
	assert.Equal(t, []string{FieldTitle}, res.ChangedFields)
	assert.Equal(t, "Updated title", res.Summary)
}

func TestApplyUpdate_OrphanedEntitiesAreArchived(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	payload := basePayload()
	payload["actions"] = []interface{}{}
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1",
		MeetingID:   "m-1",
		Meeting:     payload,
		Actor:       editorActor,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{FieldActions}, res.ChangedFields)

	// Archived, not deleted
	a, err := env.actions.FindByID(context.Background(), "ws-1", "A-1")
	require.NoError(t, err)
	assert.True(t, a.Archived)
	assert.Equal(t, editorActor.UID, a.ArchivedBy)
	require.NotNil(t, a.ArchivedAt)

	events := env.history.eventsFor(entities.HistoryEntityAction, "A-1")
	require.Len(t, events, 2)
	assert.Equal(t, entities.HistoryEventArchived, events[1].EventType)

	// Decisions were untouched
	d, err := env.decisions.FindByID(context.Background(), "ws-1", "D1")
	require.NoError(t, err)
	assert.False(t, d.Archived)
}

func TestApplyUpdate_EditingArchivedEntityRevivesIt(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	// Archive A-1 by omitting it
	payload := basePayload()
	payload["actions"] = []interface{}{}
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	// Reference it again with an edit
	payload = basePayload()
	payload["actions"] = []interface{}{
		map[string]interface{}{"id": "A-1", "title": "Set up CI pipeline", "owner": "Bob"},
	}
	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	a, err := env.actions.FindByID(context.Background(), "ws-1", "A-1")
	require.NoError(t, err)
	assert.False(t, a.Archived)
	assert.Nil(t, a.ArchivedAt)
	assert.Equal(t, "Set up CI pipeline", a.Title)
}

func TestApplyUpdate_ReportsDroppedItems(t *testing.T) {
	env := newTestEnv()
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1",
		MeetingID:   "m-1",
		Meeting: map[string]interface{}{
			"title": "Standup",
			"attendees": []interface{}{
				map[string]interface{}{"name": "Alice"},
				map[string]interface{}{"role": "nameless"},
			},
		},
		Actor: editorActor,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.DroppedItems)
}

func TestApplyUpdate_AuthorizationFailures(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: basePayload(),
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrMissingIdentity)

	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: basePayload(), Actor: viewerActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrEditorRequired)

	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Actor: editorActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptyUpdate)

	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: "not an object", Actor: editorActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidPayload)
}

func TestApplyUpdate_LockedMeetingRejectsEditors(t *testing.T) {
	env := newTestEnv()

	payload := basePayload()
	payload["locked"] = true
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	// Editor bounced off the locked meeting
	payload["title"] = "Changed"
	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingLocked)

	// Admin may edit, including unlocking
	payload["locked"] = false
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: adminActor,
	})
	require.NoError(t, err)
	assert.Contains(t, res.ChangedFields, FieldLock)
}

func TestApplyUpdate_EmitsMentionsOnlyForNewHandles(t *testing.T) {
	env := newTestEnv()

	payload := basePayload()
	payload["actions"] = []interface{}{
		map[string]interface{}{"id": "A-1", "title": "Ping @carol about CI"},
	}
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	require.Len(t, env.notifier.notifications, 1)
	n := env.notifier.notifications[0]
	assert.Equal(t, "carol", n.Handle)
	assert.Equal(t, "action", n.EntityType)
	assert.Equal(t, "/workspaces/ws-1/actions/A-1", n.Path)

	// Same handle in a later edit stays silent; a new handle fires
	payload["actions"] = []interface{}{
		map[string]interface{}{"id": "A-1", "title": "Ping @carol and @dave about CI"},
	}
	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	require.Len(t, env.notifier.notifications, 2)
	assert.Equal(t, "dave", env.notifier.notifications[1].Handle)
}

func TestRestore_RequiresAdminAndExistingMeeting(t *testing.T) {
	env := newTestEnv()
	res := applyBase(t, env)

	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1",
		RestoreFromRevisionID: res.RevisionID, Actor: editorActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrAdminRequired)

	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-2",
		RestoreFromRevisionID: res.RevisionID, Actor: adminActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	_, err = env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1",
		RestoreFromRevisionID: "missing-rev", Actor: adminActor,
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrRevisionNotFound)
}

func TestRestore_AppendsNewRevisionAndRewindsContent(t *testing.T) {
	env := newTestEnv()
	first := applyBase(t, env)

	payload := basePayload()
	payload["title"] = "Renamed"
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1",
		RestoreFromRevisionID: first.RevisionID, Actor: adminActor,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Revision)
	assert.Equal(t, entities.RevisionEventRestored, res.EventType)
	assert.Equal(t, first.RevisionID, res.RestoredFrom)
	assert.Equal(t, []string{FieldTitle}, res.ChangedFields)
	assert.Equal(t, "Sprint Planning", res.Meeting.Title)

	// The log grew; nothing was rewritten or removed
	assert.Len(t, env.revisions.revisions, 3)
	last := env.revisions.revisions[2]
	assert.Equal(t, entities.RevisionSourceRestore, last.Source)
	require.NotNil(t, last.RestoredFromRevisionID)
	assert.Equal(t, first.RevisionID, *last.RestoredFromRevisionID)
}

func TestApplyUpdate_NonRestoreRevisionHasNoRestoredFrom(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	payload := basePayload()
	payload["title"] = "Renamed"
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	// The column is uuid-typed; created/updated rows must carry nil so the
	// insert binds NULL instead of "".
	require.Len(t, env.revisions.revisions, 2)
	for _, r := range env.revisions.revisions {
		assert.Nil(t, r.RestoredFromRevisionID)
	}
}

func TestRestore_IdenticalSnapshotUsesSentinel(t *testing.T) {
	env := newTestEnv()
	first := applyBase(t, env)

	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1",
		RestoreFromRevisionID: first.RevisionID, Actor: adminActor,
	})
	require.NoError(t, err)

	assert.False(t, res.NoOp)
	assert.Equal(t, 2, res.Revision)
	assert.Equal(t, []string{RestoredSentinel}, res.ChangedFields)
	assert.Equal(t, "Restored snapshot", res.Summary)
}

func TestRestore_RevisionCounterNeverRegresses(t *testing.T) {
	env := newTestEnv()
	first := applyBase(t, env)

	for i := 0; i < 3; i++ {
		payload := basePayload()
		payload["objective"] = time.Duration(i).String()
		_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
			WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
		})
		require.NoError(t, err)
	}

	// Live revision is 4; restoring revision 1 must advance to 5
	res, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1",
		RestoreFromRevisionID: first.RevisionID, Actor: adminActor,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Revision)
}

func TestGetMeeting_NotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.GetMeeting(context.Background(), "ws-1", "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestListRevisions_NewestFirst(t *testing.T) {
	env := newTestEnv()
	applyBase(t, env)

	payload := basePayload()
	payload["title"] = "Renamed"
	_, err := env.svc.ApplyUpdate(context.Background(), UpdateInput{
		WorkspaceID: "ws-1", MeetingID: "m-1", Meeting: payload, Actor: editorActor,
	})
	require.NoError(t, err)

	revisions, total, err := env.svc.ListRevisions(context.Background(), "ws-1", "m-1", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, revisions, 2)
	assert.Equal(t, 2, revisions[0].MeetingRevision)
	assert.Equal(t, 1, revisions[1].MeetingRevision)
}
