package repositories

import (
	"context"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// EntityFilters represents filter options for listing canonical entities
type EntityFilters struct {
	IncludeArchived bool
	MeetingID       string
	Limit           int
	Offset          int
}

// DecisionRepository defines the interface for canonical decision access
type DecisionRepository interface {
	// Create persists a new canonical decision
	Create(ctx context.Context, decision *entities.Decision) error

	// FindByID retrieves a decision by workspace and id
	FindByID(ctx context.Context, workspaceID, id string) (*entities.Decision, error)

	// FindByMeetingID retrieves all decisions whose provenance is the meeting
	FindByMeetingID(ctx context.Context, workspaceID, meetingID string) ([]*entities.Decision, error)

	// Update overwrites an existing decision
	Update(ctx context.Context, decision *entities.Decision) error

	// List retrieves decisions with filters
	List(ctx context.Context, workspaceID string, filters EntityFilters) ([]*entities.Decision, int64, error)
}

// ActionRepository defines the interface for canonical action access
type ActionRepository interface {
	// Create persists a new canonical action
	Create(ctx context.Context, action *entities.Action) error

	// FindByID retrieves an action by workspace and id
	FindByID(ctx context.Context, workspaceID, id string) (*entities.Action, error)

	// FindByMeetingID retrieves all actions whose provenance is the meeting
	FindByMeetingID(ctx context.Context, workspaceID, meetingID string) ([]*entities.Action, error)

	// Update overwrites an existing action
	Update(ctx context.Context, action *entities.Action) error

	// List retrieves actions with filters
	List(ctx context.Context, workspaceID string, filters EntityFilters) ([]*entities.Action, int64, error)
}

// HistoryRepository defines the interface for the per-entity append-only
// history log
type HistoryRepository interface {
	// Append writes one write-once history event
	Append(ctx context.Context, event *entities.EntityHistoryEvent) error

	// ListByEntity retrieves events for one entity newest first
	ListByEntity(ctx context.Context, workspaceID string, entity entities.HistoryEntity, entityID string, limit, offset int) ([]*entities.EntityHistoryEvent, int64, error)
}

// MemberRepository defines the interface for workspace membership lookup
type MemberRepository interface {
	// FindByUID retrieves the membership record for a caller
	FindByUID(ctx context.Context, workspaceID, uid string) (*entities.WorkspaceMember, error)

	// FindByHandles resolves mention handles to members
	FindByHandles(ctx context.Context, workspaceID string, handles []string) ([]*entities.WorkspaceMember, error)

	// Create persists a new workspace member
	Create(ctx context.Context, member *entities.WorkspaceMember) error
}
