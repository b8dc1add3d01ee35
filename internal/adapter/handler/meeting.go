package handler

import (
	stdErrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// Meeting handles the meeting catalogue, uploads and transcript processing
type Meeting struct {
	meetingService meetingUsecase.Service
	aiService      aiuse.Service
	uploadTTL      time.Duration
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(
	meetingService meetingUsecase.Service,
	aiService aiuse.Service,
	uploadTTL time.Duration,
	maxUploadBytes int64,
	logger *zap.Logger,
) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		aiService:      aiService,
		uploadTTL:      uploadTTL,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Returns every meeting in the catalogue, oldest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]meeting.MeetingResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCacheFailed("list meetings", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Registers a meeting. Title defaults to "Untitled" and meeting_type to "upload". Fields may also be sent as query parameters.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request       body      meeting.CreateMeetingRequest  false  "Meeting"
// @Param        title         query     string                        false  "Title"
// @Param        meeting_type  query     string                        false  "Meeting type"
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse  "Linked upload not found"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if req.Title == "" {
		req.Title = c.QueryParam("title")
	}
	if req.MeetingType == "" {
		req.MeetingType = c.QueryParam("meeting_type")
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		MeetingType: req.MeetingType,
		UploadID:    req.UploadID,
	})
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUploadNotFound) {
			return HandleError(h.logger, c, errors.ErrUploadNotFound(req.UploadID))
		}
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, usecaseErrors.ErrInvalidMeetingID)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// ProcessTranscript handles POST /meetings/process
// @Summary      Extract actions from a transcript
// @Description  Returns a short summary, assigned actions and meeting moderation notes. When the model yields no actions, a rule-based extractor fills them in.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.ProcessTranscriptRequest  true  "Transcript"
// @Success      200  {object}  common.SuccessResponse{data=ai.ActionsResponse}
// @Failure      400  {object}  common.ErrorResponse  "Transcript is required"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Router       /meetings/process [post]
func (h *Meeting) ProcessTranscript(c echo.Context) error {
	var req meeting.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return HandleError(h.logger, c, errors.ErrEmptyText("transcript"))
	}

	return extractActions(h.logger, h.aiService, c, req.Transcript)
}
