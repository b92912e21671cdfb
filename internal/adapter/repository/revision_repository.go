package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// revisionRepository implements the RevisionRepository interface. The table
// is append-only; no update or delete is exposed.
type revisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(db *gorm.DB) repositories.RevisionRepository {
	return &revisionRepository{db: db}
}

// Append writes one immutable revision row
func (r *revisionRepository) Append(ctx context.Context, revision *entities.MeetingRevision) error {
	return r.db.WithContext(ctx).Create(revision).Error
}

// FindByID retrieves a single revision row
func (r *revisionRepository) FindByID(ctx context.Context, workspaceID, meetingID, revisionID string) (*entities.MeetingRevision, error) {
	var revision entities.MeetingRevision
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND meeting_id = ? AND id = ?", workspaceID, meetingID, revisionID).
		First(&revision).Error

	if err != nil {
		return nil, err
	}
	return &revision, nil
}

// ListByMeeting retrieves revision rows newest first
func (r *revisionRepository) ListByMeeting(ctx context.Context, workspaceID, meetingID string, limit, offset int) ([]*entities.MeetingRevision, int64, error) {
	var revisions []*entities.MeetingRevision
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.MeetingRevision{}).
		Where("workspace_id = ? AND meeting_id = ?", workspaceID, meetingID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("meeting_revision DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&revisions).Error
	return revisions, total, err
}
