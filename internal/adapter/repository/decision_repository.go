package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

// Create creates a new canonical decision
func (r *decisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

// FindByID retrieves a decision by workspace and id
func (r *decisionRepository) FindByID(ctx context.Context, workspaceID, id string) (*entities.Decision, error) {
	var decision entities.Decision
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		First(&decision).Error

	if err != nil {
		return nil, err
	}
	return &decision, nil
}

// FindByMeetingID retrieves all decisions whose provenance is the meeting
func (r *decisionRepository) FindByMeetingID(ctx context.Context, workspaceID, meetingID string) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND meeting_id = ?", workspaceID, meetingID).
		Order("created_at ASC").
		Find(&decisions).Error
	return decisions, err
}

// Update overwrites an existing decision
func (r *decisionRepository) Update(ctx context.Context, decision *entities.Decision) error {
	return r.db.WithContext(ctx).Save(decision).Error
}

// List retrieves decisions with filters
func (r *decisionRepository) List(ctx context.Context, workspaceID string, filters repositories.EntityFilters) ([]*entities.Decision, int64, error) {
	var decisions []*entities.Decision
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.Decision{}).
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

	err := query.Find(&decisions).Error
	return decisions, total, err
}
