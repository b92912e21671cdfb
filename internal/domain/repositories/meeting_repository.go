package repositories

import (
	"context"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting root document access
type MeetingRepository interface {
	// Create persists a new meeting record
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by workspace and meeting id
	FindByID(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error)

	// Update overwrites an existing meeting record
	Update(ctx context.Context, meeting *entities.Meeting) error
}

// RevisionRepository defines the interface for the meeting-scoped,
// append-only revision log. There is deliberately no update or delete.
type RevisionRepository interface {
	// Append writes one immutable revision row
	Append(ctx context.Context, revision *entities.MeetingRevision) error

	// FindByID retrieves a single revision row
	FindByID(ctx context.Context, workspaceID, meetingID, revisionID string) (*entities.MeetingRevision, error)

	// ListByMeeting retrieves revision rows newest first
	ListByMeeting(ctx context.Context, workspaceID, meetingID string, limit, offset int) ([]*entities.MeetingRevision, int64, error)
}
