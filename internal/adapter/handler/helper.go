package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/common"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, common.SuccessResponse{
		Status: common.StatusSuccess,
		Data:   data,
	})
}

// HandleError centralizes error handling and logging using provided logger.
// The raw cause is logged and never written to the client.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Status:  common.StatusError,
		Code:    appErr.Code.String(),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// ErrorHandler renders errors that escape handlers (routing, body limit, panics
// recovered by middleware) with the same envelope
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}

// toAppError maps usecase and framework errors onto the API error catalogue
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var pre *aiuse.PreconditionError
	if stdErrors.As(err, &pre) {
		switch {
		case stdErrors.Is(err, aiuse.ErrMissingCredential):
			return errors.ErrMissingCredential(pre.Reason)
		case stdErrors.Is(err, aiuse.ErrEmptyText):
			return errors.ErrEmptyText(pre.Reason)
		case stdErrors.Is(err, aiuse.ErrEmptyAudio):
			return errors.ErrMissingFile("file")
		}
		return errors.ErrInvalidArgument(pre.Error())
	}

	var up *aiuse.UpstreamError
	if stdErrors.As(err, &up) {
		switch up.Stage {
		case aiuse.StageTranscribe:
			return errors.ErrAITranscriptionFailed(err)
		case aiuse.StageSummarize:
			return errors.ErrAISummaryFailed(err)
		}
		return errors.ErrUpstreamFailed(up.Stage, err)
	}

	var verrs validator.ValidationErrors
	if stdErrors.As(err, &verrs) {
		appErr = errors.ErrValidation(err)
		for _, fe := range verrs {
			appErr = appErr.WithDetail(fe.Field(), fe.Tag())
		}
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedMedia):
		return errors.ErrUnsupportedMedia("")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyUpload):
		return errors.ErrMissingFile("file")
	case stdErrors.Is(err, usecaseErrors.ErrUploadTooLarge):
		return errors.ErrUploadTooLarge(0)
	case stdErrors.Is(err, usecaseErrors.ErrUploadNotFound),
		stdErrors.Is(err, usecaseErrors.ErrUploadMissing):
		return errors.ErrUploadNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingID),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	}

	var he *echo.HTTPError
	if stdErrors.As(err, &he) {
		return fromHTTPError(he)
	}

	return errors.ErrInternal(err)
}

func fromHTTPError(he *echo.HTTPError) errors.AppError {
	switch he.Code {
	case http.StatusRequestEntityTooLarge:
		return errors.ErrUploadTooLarge(0)
	case http.StatusNotFound:
		return errors.ErrNotFound("Route")
	case http.StatusInternalServerError:
		return errors.ErrInternal(he)
	}

	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}
	return errors.AppError{
		Raw:      he,
		HTTPCode: he.Code,
		Code:     errors.ErrorCode_INVALID_ARGUMENT,
		Message:  msg,
	}
}
