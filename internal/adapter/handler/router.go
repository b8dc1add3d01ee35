package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// APIVersion is reported by the health endpoints
const APIVersion = "v1"

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	aiController   *AIController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, aiController *AIController) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		aiController:   aiController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if rt.cfg == nil || rt.cfg.Server.Environment != "production" {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// API v1 group
	v1 := e.Group("/api/v1")
	v1.GET("/health", rt.healthCheck)

	rt.setupMeetingRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupMeetingRoutes configures catalogue, upload and processing routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	if rt.meetingHandler == nil {
		meetings.Any("*", rt.notImplemented)
		return
	}

	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.POST("/upload", rt.meetingHandler.Upload)
	meetings.DELETE("/upload/:upload_id", rt.meetingHandler.DiscardUpload)
	meetings.POST("/transcribe", rt.meetingHandler.TranscribeUpload)
	meetings.POST("/process", rt.meetingHandler.ProcessTranscript)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
}

// setupAIRoutes configures one route per pipeline stage plus the full chain
func (rt *Router) setupAIRoutes(g *echo.Group) {
	if rt.aiController == nil {
		for _, path := range []string{"/transcribe", "/translate", "/summarize", "/moderate", "/actions", "/analyze"} {
			g.POST(path, rt.notImplemented)
		}
		return
	}

	g.POST("/transcribe", rt.aiController.Transcribe)
	g.POST("/translate", rt.aiController.Translate)
	g.POST("/summarize", rt.aiController.Summarize)
	g.POST("/moderate", rt.aiController.Moderate)
	g.POST("/actions", rt.aiController.Actions)
	g.POST("/analyze", rt.aiController.Analyze)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, common.ErrorResponse{
		Status:  common.StatusError,
		Code:    "NOT_IMPLEMENTED",
		Message: "This endpoint is not yet implemented",
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Version: APIVersion,
	})
}
