package handlers

import (
	"errors"
	"io"
	"net/http"

	"core/broadcast"
	"core/engine"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	hub          *broadcast.Hub
}

func NewMatchHandler(matchService *services.MatchService, hub *broadcast.Hub) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		hub:          hub,
	}
}

// CreateMatch starts a new live match
// @Summary Create a new match
// @Description Start a live match with the given format, scoring system and target score
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match configuration"
// @Success 201 {object} models.MatchState
// @Failure 400 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch returns a match snapshot with its history
// @Summary Get match by ID
// @Description Get the current state and history of a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchResponse
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// RecordRally records the outcome of one rally
// @Summary Record a rally
// @Description Attribute a rally to the winning team and apply scoring and serve rules
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param rally body models.RecordRallyRequest true "Rally outcome"
// @Success 200 {object} models.MatchState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/rallies [post]
func (h *MatchHandler) RecordRally(c *gin.Context) {
	var req models.RecordRallyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.RecordRally(c.Param("id"), req.WinningTeam)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, engine.ErrMatchCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// Undo reverts the most recent rally or serve switch
// @Summary Undo the last scoring event
// @Description Restore the match to its state before the most recent rally or serve switch
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/undo [post]
func (h *MatchHandler) Undo(c *gin.Context) {
	match, err := h.matchService.Undo(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, engine.ErrEmptyHistory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// SwitchServe manually rotates the serve
// @Summary Switch serve manually
// @Description Operator override: rotate the serve regardless of match status
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchState
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/switch-serve [post]
func (h *MatchHandler) SwitchServe(c *gin.Context) {
	match, err := h.matchService.SwitchServe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match from the registry
// @Summary Delete match
// @Description Remove a match from the live registry, archiving it if completed
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	if err := h.matchService.DeleteMatch(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// StreamMatch pushes snapshots to the client after every mutation
// @Summary Stream match snapshots
// @Description Server-sent events stream of match snapshots, one event per mutation
// @Tags matches
// @Produce text/event-stream
// @Param id path string true "Match ID"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/stream [get]
func (h *MatchHandler) StreamMatch(c *gin.Context) {
	matchID := c.Param("id")
	snapshot, err := h.matchService.GetSnapshot(matchID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ch, cancel := h.hub.Subscribe(broadcast.MatchTopic(matchID))
	defer cancel()

	// Send the current state immediately so late subscribers catch up.
	c.SSEvent("snapshot", snapshot)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
