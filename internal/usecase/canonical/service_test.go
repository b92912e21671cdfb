package canonical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
)

type stubDecisionRepo struct {
	byID map[string]*entities.Decision
}

func (r *stubDecisionRepo) Create(context.Context, *entities.Decision) error { return nil }
func (r *stubDecisionRepo) Update(context.Context, *entities.Decision) error { return nil }

func (r *stubDecisionRepo) FindByID(_ context.Context, _, id string) (*entities.Decision, error) {
	if d, ok := r.byID[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDecisionRepo) FindByMeetingID(context.Context, string, string) ([]*entities.Decision, error) {
	return nil, nil
}

func (r *stubDecisionRepo) List(_ context.Context, _ string, filters repositories.EntityFilters) ([]*entities.Decision, int64, error) {
	out := []*entities.Decision{}
	for _, d := range r.byID {
		if d.Archived && !filters.IncludeArchived {
			continue
		}
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

type stubActionRepo struct {
	byID map[string]*entities.Action
}

func (r *stubActionRepo) Create(context.Context, *entities.Action) error { return nil }
func (r *stubActionRepo) Update(context.Context, *entities.Action) error { return nil }

func (r *stubActionRepo) FindByID(_ context.Context, _, id string) (*entities.Action, error) {
	if a, ok := r.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubActionRepo) FindByMeetingID(context.Context, string, string) ([]*entities.Action, error) {
	return nil, nil
}

func (r *stubActionRepo) List(_ context.Context, _ string, _ repositories.EntityFilters) ([]*entities.Action, int64, error) {
	out := []*entities.Action{}
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

type stubHistoryRepo struct {
	events []*entities.EntityHistoryEvent
}

func (r *stubHistoryRepo) Append(context.Context, *entities.EntityHistoryEvent) error { return nil }

func (r *stubHistoryRepo) ListByEntity(_ context.Context, _ string, _ entities.HistoryEntity, _ string, _, _ int) ([]*entities.EntityHistoryEvent, int64, error) {
	return r.events, int64(len(r.events)), nil
}

func newStubService() (*Service, *stubDecisionRepo, *stubActionRepo) {
	decisions := &stubDecisionRepo{byID: map[string]*entities.Decision{}}
	actions := &stubActionRepo{byID: map[string]*entities.Action{}}
	return NewService(decisions, actions, &stubHistoryRepo{}), decisions, actions
}

func TestGetDecision_NotFoundSentinel(t *testing.T) {
	svc, _, _ := newStubService()

	_, err := svc.GetDecision(context.Background(), "ws-1", "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrEntityNotFound)
}

func TestGetAction_NotFoundSentinel(t *testing.T) {
	svc, _, _ := newStubService()

	_, err := svc.GetAction(context.Background(), "ws-1", "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrEntityNotFound)
}

func TestListDecisions_FiltersArchived(t *testing.T) {
	svc, decisions, _ := newStubService()
	decisions.byID["d1"] = &entities.Decision{ID: "d1", WorkspaceID: "ws-1"}
	decisions.byID["d2"] = &entities.Decision{ID: "d2", WorkspaceID: "ws-1", Archived: true}

	visible, total, err := svc.ListDecisions(context.Background(), "ws-1", repositories.EntityFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, visible, 1)
	assert.Equal(t, "d1", visible[0].ID)

	all, total, err := svc.ListDecisions(context.Background(), "ws-1", repositories.EntityFilters{IncludeArchived: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}
