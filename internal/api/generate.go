package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriplan/backend/internal/service"
	"github.com/pageza/nutriplan/backend/internal/types"
)

// MissingPromptMessage is the body of the 400 answered when a request has no prompt.
const MissingPromptMessage = "No prompt in the request"

// PlanHandler relays generated plans to the caller as they stream in
type PlanHandler struct {
	streamer service.CompletionStreamer
}

// NewPlanHandler creates a new PlanHandler instance
func NewPlanHandler(streamer service.CompletionStreamer) *PlanHandler {
	return &PlanHandler{streamer: streamer}
}

// RegisterRoutes registers the generation routes behind the given middleware
func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	router.POST("/generate", append(middleware[:len(middleware):len(middleware)], h.Generate)...)
	router.POST("/plan", append(middleware[:len(middleware):len(middleware)], h.Plan)...)
	router.POST("/plan/export", h.Export)
}

// Generate streams the completion for a caller-built prompt
func (h *PlanHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.String(http.StatusBadRequest, MissingPromptMessage)
		return
	}
	h.stream(c, req.Prompt)
}

// Plan builds the prompt from a profile and streams the completion
func (h *PlanHandler) Plan(c *gin.Context) {
	var req types.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.stream(c, service.BuildPrompt(req.Profile, req.Language, req.Vibe))
}

func (h *PlanHandler) stream(c *gin.Context, prompt string) {
	deltas, err := h.streamer.StreamCompletion(c.Request.Context(), prompt)
	if err != nil {
		if errors.Is(err, service.ErrMissingPrompt) {
			c.String(http.StatusBadRequest, MissingPromptMessage)
			return
		}
		log.Printf("[PlanHandler] generation failed: %v", err)
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for delta := range deltas {
		if delta.Err != nil {
			// The status line is already sent. Dropping the connection without
			// the terminating chunk makes the reader see a failed body, not a short plan.
			log.Printf("[PlanHandler] stream ended early: %v", delta.Err)
			panic(http.ErrAbortHandler)
		}
		if _, err := c.Writer.WriteString(delta.Text); err != nil {
			log.Printf("[PlanHandler] client went away: %v", err)
			return
		}
		c.Writer.Flush()
	}
}
