package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/workhub-team/workhub/errors"
	"github.com/workhub-team/workhub/internal/adapter/dto/common"
	dto "github.com/workhub-team/workhub/internal/adapter/dto/meeting"
	"github.com/workhub-team/workhub/internal/adapter/presenter"
	meetingUsecase "github.com/workhub-team/workhub/internal/usecase/meeting"
)

// Meeting handles meeting document HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// UpdateMeeting handles PUT /workspaces/:workspaceID/meetings/:meetingID.
// One endpoint serves both full-payload sync and restore; a restore target
// in the body takes precedence over the payload.
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	var req dto.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("request body is not valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	a, ok := getActor(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	input := meetingUsecase.UpdateInput{
		WorkspaceID:           c.Param("workspaceID"),
		MeetingID:             c.Param("meetingID"),
		Meeting:               req.Meeting,
		RestoreFromRevisionID: req.RestoreFromRevisionID,
		Actor:                 a,
	}

	result, err := h.meetingService.ApplyUpdate(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToUpdateMeetingResponse(result))
}

// GetMeeting handles GET /workspaces/:workspaceID/meetings/:meetingID
func (h *Meeting) GetMeeting(c echo.Context) error {
	m, err := h.meetingService.GetMeeting(c.Request().Context(), c.Param("workspaceID"), c.Param("meetingID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListRevisions handles GET /workspaces/:workspaceID/meetings/:meetingID/revisions
func (h *Meeting) ListRevisions(c echo.Context) error {
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

	revisions, total, err := h.meetingService.ListRevisions(
		c.Request().Context(), c.Param("workspaceID"), c.Param("meetingID"), req.Limit, req.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToRevisionListResponse(revisions),
		Meta: common.ListMeta{Limit: req.Limit, Offset: req.Offset, Total: total},
	})
}

// GetRevision handles GET /workspaces/:workspaceID/meetings/:meetingID/revisions/:revisionID
func (h *Meeting) GetRevision(c echo.Context) error {
	r, err := h.meetingService.GetRevision(
		c.Request().Context(), c.Param("workspaceID"), c.Param("meetingID"), c.Param("revisionID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToRevisionResponse(r, true))
}
