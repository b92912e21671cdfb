package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workhub-team/workhub/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	entityHandler  *Entity
	authMiddleware echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, entityHandler *Entity, authMiddleware echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		entityHandler:  entityHandler,
		authMiddleware: authMiddleware,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group; everything under a workspace requires an authenticated
	// workspace member
	v1 := e.Group("/v1")
	ws := v1.Group("/workspaces/:workspaceID")
	if rt.authMiddleware != nil {
		ws.Use(rt.authMiddleware)
	}

	rt.setupMeetingRoutes(ws)
	rt.setupEntityRoutes(ws)
}

// setupMeetingRoutes configures meeting sync and revision log routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.PUT("/:meetingID", rt.meetingHandler.UpdateMeeting)
	meetings.GET("/:meetingID", rt.meetingHandler.GetMeeting)
	meetings.GET("/:meetingID/revisions", rt.meetingHandler.ListRevisions)
	meetings.GET("/:meetingID/revisions/:revisionID", rt.meetingHandler.GetRevision)
}

// setupEntityRoutes configures canonical decision/action routes
func (rt *Router) setupEntityRoutes(g *echo.Group) {
	decisions := g.Group("/decisions")
	decisions.GET("", rt.entityHandler.ListDecisions)
	decisions.GET("/:decisionID", rt.entityHandler.GetDecision)
	decisions.GET("/:decisionID/history", rt.entityHandler.DecisionHistory)

	actions := g.Group("/actions")
	actions.GET("", rt.entityHandler.ListActions)
	actions.GET("/:actionID", rt.entityHandler.GetAction)
	actions.GET("/:actionID/history", rt.entityHandler.ActionHistory)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "unknown"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
