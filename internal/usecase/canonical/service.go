package canonical

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
)

// Service exposes read access to the canonical decision/action collections
// and their append-only history logs.
type Service struct {
	decisionRepo repositories.DecisionRepository
	actionRepo   repositories.ActionRepository
	historyRepo  repositories.HistoryRepository
}

// NewService creates a new canonical entity service
func NewService(
	decisionRepo repositories.DecisionRepository,
	actionRepo repositories.ActionRepository,
	historyRepo repositories.HistoryRepository,
) *Service {
	return &Service{
		decisionRepo: decisionRepo,
		actionRepo:   actionRepo,
		historyRepo:  historyRepo,
	}
}

// ListDecisions retrieves canonical decisions with filters
func (s *Service) ListDecisions(ctx context.Context, workspaceID string, filters repositories.EntityFilters) ([]*entities.Decision, int64, error) {
	decisions, total, err := s.decisionRepo.List(ctx, workspaceID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, total, nil
}

// ListActions retrieves canonical actions with filters
func (s *Service) ListActions(ctx context.Context, workspaceID string, filters repositories.EntityFilters) ([]*entities.Action, int64, error) {
	actions, total, err := s.actionRepo.List(ctx, workspaceID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}
	return actions, total, nil
}

// GetDecision retrieves one canonical decision
func (s *Service) GetDecision(ctx context.Context, workspaceID, id string) (*entities.Decision, error) {
	d, err := s.decisionRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return d, nil
}

// GetAction retrieves one canonical action
func (s *Service) GetAction(ctx context.Context, workspaceID, id string) (*entities.Action, error) {
	a, err := s.actionRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get action: %w", err)
	}
	return a, nil
}

// EntityHistory retrieves the history log for one canonical entity,
// newest first
func (s *Service) EntityHistory(ctx context.Context, workspaceID string, entity entities.HistoryEntity, entityID string, limit, offset int) ([]*entities.EntityHistoryEvent, int64, error) {
	events, total, err := s.historyRepo.ListByEntity(ctx, workspaceID, entity, entityID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history events: %w", err)
	}
	return events, total, nil
}
