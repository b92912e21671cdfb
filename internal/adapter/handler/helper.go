package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/workhub-team/workhub/errors"
	"github.com/workhub-team/workhub/internal/domain/entities"
	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
	"github.com/workhub-team/workhub/pkg/actor"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// getActor reads the authenticated workspace member set by the auth
// middleware.
func getActor(c echo.Context) (entities.Actor, bool) {
	if a, ok := c.Get("actor").(entities.Actor); ok {
		return a, true
	}
	return actor.FromContext(c.Request().Context())
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Usecase sentinels are translated to AppError first so every failure leaves
// through the same shape.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	err = mapUsecaseError(c, err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapUsecaseError converts usecase sentinel errors into transport errors
func mapUsecaseError(c echo.Context, err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(c.Param("meetingID"))
	case stdErrors.Is(err, usecaseErrors.ErrRevisionNotFound):
		return errors.ErrRevisionNotFound(c.Param("revisionID"))
	case stdErrors.Is(err, usecaseErrors.ErrEntityNotFound):
		return errors.ErrNotFound("entity")
	case stdErrors.Is(err, usecaseErrors.ErrMemberNotFound):
		return errors.ErrNotFound("workspace member")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingLocked):
		return errors.ErrMeetingLocked(c.Param("meetingID"))
	case stdErrors.Is(err, usecaseErrors.ErrMissingIdentity):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrNotMember):
		return errors.ErrForbidden("not a member of this workspace")
	case stdErrors.Is(err, usecaseErrors.ErrEditorRequired):
		return errors.ErrForbidden("editor role required")
	case stdErrors.Is(err, usecaseErrors.ErrAdminRequired):
		return errors.ErrForbidden("admin role required")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyUpdate):
		return errors.ErrInvalidArgument("request carries neither a meeting payload nor a restore target")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidPayload):
		return errors.ErrInvalidPayload()
	case stdErrors.Is(err, usecaseErrors.ErrSyncFailed),
		stdErrors.Is(err, usecaseErrors.ErrRevisionWrite):
		return errors.ErrSyncFailed(err)
	default:
		return err
	}
}
