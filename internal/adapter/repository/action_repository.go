package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// actionRepository implements the ActionRepository interface
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(db *gorm.DB) repositories.ActionRepository {
	return &actionRepository{db: db}
}

// Create creates a new canonical action
func (r *actionRepository) Create(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// FindByID retrieves an action by workspace and id
func (r *actionRepository) FindByID(ctx context.Context, workspaceID, id string) (*entities.Action, error) {
	var action entities.Action
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		First(&action).Error

	if err != nil {
		return nil, err
	}
	return &action, nil
}

// FindByMeetingID retrieves all actions whose provenance is the meeting
func (r *actionRepository) FindByMeetingID(ctx context.Context, workspaceID, meetingID string) ([]*entities.Action, error) {
	var actions []*entities.Action
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND meeting_id = ?", workspaceID, meetingID).
		Order("created_at ASC").
		Find(&actions).Error
	return actions, err
}

// Update overwrites an existing action
func (r *actionRepository) Update(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Save(action).Error
}

// List retrieves actions with filters
func (r *actionRepository) List(ctx context.Context, workspaceID string, filters repositories.EntityFilters) ([]*entities.Action, int64, error) {
	var actions []*entities.Action
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.Action{}).
		Where("workspace_id = ?", workspaceID)

	if !filters.IncludeArchived {
		query = query.Where("archived = ?", false)
	}
	if filters.MeetingID != "" {
		query = query.Where("meeting_id = ?", filters.MeetingID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&actions).Error
	return actions, total, err
}
