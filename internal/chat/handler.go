// Package chat serves the session endpoints: agent creation, chat turns
// and session deletion.
package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/agent"
	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/match"
	"jobhunter-backend/internal/profile"
	"jobhunter-backend/internal/session"
	"jobhunter-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the session registry.
type Handler struct {
	Registry *session.Registry
	Corpus   corpus.Provider
	Advisor  agent.Advisor
	AgentCfg agent.Config
}

// NewHandler constructs a Handler.
func NewHandler(reg *session.Registry, provider corpus.Provider, advisor agent.Advisor, cfg agent.Config) *Handler {
	return &Handler{Registry: reg, Corpus: provider, Advisor: advisor, AgentCfg: cfg}
}

// RegisterRoutes attaches chat routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/create-agent/:sessionId", h.createAgent)
	r.POST("/chat/:sessionId", h.chat)
	r.DELETE("/session/:sessionId", h.deleteSession)
}

type createAgentResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *Handler) createAgent(c *gin.Context) {
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	var raw profile.Profile
	if err := c.ShouldBindJSON(&raw); err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "invalid profile body", nil)
		return
	}

	normalized, err := profile.Normalize(raw)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return
	}

	ag := agent.New(normalized, h.Corpus, h.Advisor, h.AgentCfg)
	if _, err := h.Registry.Create(sessionID, ag); err != nil {
		if errors.Is(err, session.ErrDuplicate) {
			respond.Error(c, http.StatusConflict, "duplicate_session", "session already exists", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to create session", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, createAgentResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Chat agent created successfully",
	})
}

type chatRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message        string         `json:"message"`
	JobSuggestions []match.Result `json:"job_suggestions"`
	RequiresInput  bool           `json:"requires_input"`
}

func (h *Handler) chat(c *gin.Context) {
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	sess, err := h.Registry.Get(sessionID)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "session_not_found", "Session not found. Please parse a resume first.", nil)
		return
	}

	result, err := sess.Agent.HandleTurn(c.Request.Context(), req.Content)
	if err != nil {
		if errors.Is(err, agent.ErrExpired) {
			// Lost the race with eviction; to the client the session is gone.
			respond.Error(c, http.StatusNotFound, "session_expired", "Session expired. Please parse a resume again.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to process message", nil)
		return
	}

	c.Set("intent", string(result.Intent))

	suggestions := result.Suggestions
	if suggestions == nil {
		suggestions = []match.Result{}
	}
	respond.OK(c, chatResponse{
		Message:        result.Message,
		JobSuggestions: suggestions,
		RequiresInput:  result.RequiresInput,
	})
}

type deleteSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) deleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	h.Registry.Delete(sessionID)
	respond.OK(c, deleteSessionResponse{Success: true, Message: "Session deleted"})
}
