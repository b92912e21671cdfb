package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting record
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by workspace and meeting id
func (r *meetingRepository) FindByID(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND id = ?", workspaceID, meetingID).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update overwrites an existing meeting record
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}
