package handler

import (
	stdErrors "errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

const audioFormField = "file"

// formAudio returns the uploaded audio part, mapping a missing part and an
// oversized body to their API errors
func formAudio(c echo.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(audioFormField)
	if err == nil {
		return fh, nil
	}

	var maxErr *http.MaxBytesError
	if stdErrors.As(err, &maxErr) {
		return nil, errors.ErrUploadTooLarge(maxErr.Limit)
	}
	var he *echo.HTTPError
	if stdErrors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return nil, errors.ErrUploadTooLarge(0)
	}
	return nil, errors.ErrMissingFile(audioFormField)
}

// Upload handles POST /meetings/upload
// @Summary      Upload meeting audio
// @Description  Stores an audio file and returns an upload_id to pass to /meetings/transcribe. Handles expire after UPLOAD_TTL.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio file (mpeg, wav, m4a, mp4, aac, webm, ogg)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.UploadResponse}
// @Failure      400  {object}  common.ErrorResponse  "File missing or empty"
// @Failure      413  {object}  common.ErrorResponse  "File too large"
// @Failure      415  {object}  common.ErrorResponse  "Unsupported audio type"
// @Router       /meetings/upload [post]
func (h *Meeting) Upload(c echo.Context) error {
	fh, err := formAudio(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	contentType := fh.Header.Get(echo.HeaderContentType)

	src, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	defer src.Close()

	artifact, err := h.meetingService.StoreUpload(c.Request().Context(), meetingUsecase.UploadInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrUnsupportedMedia):
			return HandleError(h.logger, c, errors.ErrUnsupportedMedia(contentType))
		case stdErrors.Is(err, usecaseErrors.ErrUploadTooLarge):
			return HandleError(h.logger, c, errors.ErrUploadTooLarge(h.maxUploadBytes))
		case stdErrors.Is(err, usecaseErrors.ErrEmptyUpload):
			return HandleError(h.logger, c, err)
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("store upload", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToUploadResponse(artifact, h.uploadTTL))
}

// TranscribeUpload handles POST /meetings/transcribe
// @Summary      Transcribe an uploaded file
// @Description  Transcribes the audio behind upload_id and reports its language
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.TranscribeUploadRequest  true  "Upload handle"
// @Success      200  {object}  common.SuccessResponse{data=meeting.TranscribeUploadResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse  "Unknown or expired upload"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Failure      502  {object}  common.ErrorResponse  "Transcription failed"
// @Router       /meetings/transcribe [post]
func (h *Meeting) TranscribeUpload(c echo.Context) error {
	var req meeting.TranscribeUploadRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	artifact, rc, err := h.meetingService.OpenUpload(ctx, req.UploadID)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUploadNotFound) || stdErrors.Is(err, usecaseErrors.ErrUploadMissing) {
			return HandleError(h.logger, c, errors.ErrUploadNotFound(req.UploadID))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("open upload", err))
	}
	defer rc.Close()

	transcript, err := h.aiService.Transcribe(ctx, aiuse.AudioInput{
		Filename: artifact.Filename,
		Body:     rc,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscribeUploadResponse(artifact.ID, transcript))
}

// DiscardUpload handles DELETE /meetings/upload/:upload_id
// @Summary      Discard an upload
// @Tags         Meetings
// @Produce      json
// @Param        upload_id  path      string  true  "Upload ID"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/upload/{upload_id} [delete]
func (h *Meeting) DiscardUpload(c echo.Context) error {
	uploadID := c.Param("upload_id")

	if err := h.meetingService.DiscardUpload(c.Request().Context(), uploadID); err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUploadNotFound) {
			return HandleError(h.logger, c, errors.ErrUploadNotFound(uploadID))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("discard upload", err))
	}

	if h.logger != nil {
		h.logger.Info("upload discarded", zap.String("upload_id", uploadID))
	}
	return HandleSuccess(h.logger, c, map[string]string{"upload_id": uploadID, "status": "discarded"})
}
