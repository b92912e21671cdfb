package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/workhub-team/workhub/errors"
	"github.com/workhub-team/workhub/internal/adapter/dto/common"
	dto "github.com/workhub-team/workhub/internal/adapter/dto/meeting"
	"github.com/workhub-team/workhub/internal/adapter/presenter"
	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	"github.com/workhub-team/workhub/internal/usecase/canonical"
)

// Entity handles canonical decision/action HTTP requests
type Entity struct {
	canonicalService *canonical.Service
	logger           *zap.Logger
}

// NewEntityHandler creates a new canonical entity handler
func NewEntityHandler(canonicalService *canonical.Service, logger *zap.Logger) *Entity {
	return &Entity{
		canonicalService: canonicalService,
		logger:           logger,
	}
}

func (h *Entity) bindFilters(c echo.Context) (repositories.EntityFilters, error) {
	var req dto.ListEntitiesRequest
	if err := c.Bind(&req); err != nil {
		return repositories.EntityFilters{}, errors.ErrInvalidArgument("invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return repositories.EntityFilters{}, errors.ErrInvalidArgument(err.Error())
	}
	if req.Limit == 0 {
		req.Limit = 50
	}
	return repositories.EntityFilters{
		IncludeArchived: req.IncludeArchived,
		MeetingID:       req.MeetingID,
		Limit:           req.Limit,
		Offset:          req.Offset,
	}, nil
}

// ListDecisions handles GET /workspaces/:workspaceID/decisions
func (h *Entity) ListDecisions(c echo.Context) error {
	filters, err := h.bindFilters(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	decisions, total, err := h.canonicalService.ListDecisions(c.Request().Context(), c.Param("workspaceID"), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToDecisionListResponse(decisions),
		Meta: common.ListMeta{Limit: filters.Limit, Offset: filters.Offset, Total: total},
	})
}

// GetDecision handles GET /workspaces/:workspaceID/decisions/:decisionID
func (h *Entity) GetDecision(c echo.Context) error {
	d, err := h.canonicalService.GetDecision(c.Request().Context(), c.Param("workspaceID"), c.Param("decisionID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToDecisionResponse(d))
}

// ListActions handles GET /workspaces/:workspaceID/actions
func (h *Entity) ListActions(c echo.Context) error {
	filters, err := h.bindFilters(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	actions, total, err := h.canonicalService.ListActions(c.Request().Context(), c.Param("workspaceID"), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToActionListResponse(actions),
		Meta: common.ListMeta{Limit: filters.Limit, Offset: filters.Offset, Total: total},
	})
}

// GetAction handles GET /workspaces/:workspaceID/actions/:actionID
func (h *Entity) GetAction(c echo.Context) error {
	a, err := h.canonicalService.GetAction(c.Request().Context(), c.Param("workspaceID"), c.Param("actionID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionResponse(a))
}

// DecisionHistory handles GET /workspaces/:workspaceID/decisions/:decisionID/history
func (h *Entity) DecisionHistory(c echo.Context) error {
	return h.entityHistory(c, entities.HistoryEntityDecision, c.Param("decisionID"))
}

// ActionHistory handles GET /workspaces/:workspaceID/actions/:actionID/history
func (h *Entity) ActionHistory(c echo.Context) error {
	return h.entityHistory(c, entities.HistoryEntityAction, c.Param("actionID"))
}

func (h *Entity) entityHistory(c echo.Context, entity entities.HistoryEntity, entityID string) error {
	var req dto.ListRevisionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if req.Limit == 0 {
		req.Limit = 50
	}

	events, total, err := h.canonicalService.EntityHistory(
		c.Request().Context(), c.Param("workspaceID"), entity, entityID, req.Limit, req.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToHistoryListResponse(events),
		Meta: common.ListMeta{Limit: req.Limit, Offset: req.Offset, Total: total},
	})
}
