package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// historyRepository implements the HistoryRepository interface. Events are
// write-once; the table has no update path.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &historyRepository{db: db}
}

// Append writes one write-once history event
func (r *historyRepository) Append(ctx context.Context, event *entities.EntityHistoryEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByEntity retrieves events for one entity newest first
func (r *historyRepository) ListByEntity(ctx context.Context, workspaceID string, entity entities.HistoryEntity, entityID string, limit, offset int) ([]*entities.EntityHistoryEvent, int64, error) {
	var events []*entities.EntityHistoryEvent
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entities.EntityHistoryEvent{}).
		Where("workspace_id = ? AND entity = ? AND entity_id = ?", workspaceID, entity, entityID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&events).Error
	return events, total, err
}
