package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"core/broadcast"
	"core/engine"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
	hub               *broadcast.Hub
}

func NewTournamentHandler(tournamentService *services.TournamentService, hub *broadcast.Hub) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		hub:               hub,
	}
}

// CreateTournament creates a round-robin tournament
// @Summary Create a new tournament
// @Description Create a round-robin tournament, generating one fixture per pair of teams
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Router /tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// GetStandings returns the current standings view
// @Summary Get tournament standings
// @Description Get tournament metadata, rankings with win percentage, and the fixture list
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.StandingsResponse
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) GetStandings(c *gin.Context) {
	standings, err := h.tournamentService.GetStandings(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, standings)
}

// RecordFixtureResult completes a fixture with a final score
// @Summary Record fixture result
// @Description Complete a fixture with a final score and update standings
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param fixtureId path int true "Fixture ID"
// @Param result body models.RecordFixtureResultRequest true "Final score"
// @Success 200 {object} models.StandingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tournaments/{id}/fixtures/{fixtureId}/result [post]
func (h *TournamentHandler) RecordFixtureResult(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixtureId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fixture ID"})
		return
	}

	var req models.RecordFixtureResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	standings, err := h.tournamentService.RecordFixtureResult(c.Param("id"), fixtureID, req.Team1Score, req.Team2Score)
	if err != nil {
		h.writeTournamentError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}

// StartFixtureMatch spawns a live match for a fixture
// @Summary Start a fixture match
// @Description Create a live match for a pending fixture and link it
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param fixtureId path int true "Fixture ID"
// @Param match body models.CreateMatchRequest true "Match configuration"
// @Success 201 {object} models.StartFixtureResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tournaments/{id}/fixtures/{fixtureId}/start [post]
func (h *TournamentHandler) StartFixtureMatch(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixtureId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fixture ID"})
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started, err := h.tournamentService.StartFixtureMatch(c.Param("id"), fixtureID, req)
	if err != nil {
		h.writeTournamentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, started)
}

// CompleteFixtureFromMatch completes a fixture from its linked match
// @Summary Complete fixture from match
// @Description Feed the final score of the fixture's completed linked match into the standings
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Param fixtureId path int true "Fixture ID"
// @Success 200 {object} models.StandingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tournaments/{id}/fixtures/{fixtureId}/complete [post]
func (h *TournamentHandler) CompleteFixtureFromMatch(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixtureId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fixture ID"})
		return
	}

	standings, err := h.tournamentService.CompleteFixtureFromMatch(c.Param("id"), fixtureID)
	if err != nil {
		h.writeTournamentError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}

// GetRankings returns the current rankings
// @Summary Get tournament rankings
// @Description Get the ranked team list, best first
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {array} models.RankingEntry
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/rankings [get]
func (h *TournamentHandler) GetRankings(c *gin.Context) {
	rankings, err := h.tournamentService.GetRankings(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// GetTiedGroups returns the groups still requiring head-to-head rules
// @Summary Get tied groups
// @Description Get groups of teams sharing identical (wins, point difference, points scored)
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {array} models.TiedGroup
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/tied-groups [get]
func (h *TournamentHandler) GetTiedGroups(c *gin.Context) {
	groups, err := h.tournamentService.GetTiedGroups(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// DeleteTournament removes a tournament from the registry
// @Summary Delete tournament
// @Description Remove a tournament from the live registry, archiving it if completed
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	if err := h.tournamentService.DeleteTournament(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted successfully"})
}

// StreamStandings pushes standings views to the client after every mutation
// @Summary Stream tournament standings
// @Description Server-sent events stream of standings views, one event per mutation
// @Tags tournaments
// @Produce text/event-stream
// @Param id path string true "Tournament ID"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/stream [get]
func (h *TournamentHandler) StreamStandings(c *gin.Context) {
	tournamentID := c.Param("id")
	standings, err := h.tournamentService.GetStandings(tournamentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ch, cancel := h.hub.Subscribe(broadcast.TournamentTopic(tournamentID))
	defer cancel()

	c.SSEvent("standings", standings)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("standings", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *TournamentHandler) writeTournamentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTournamentNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, engine.ErrFixtureNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrFixtureCompleted),
		errors.Is(err, engine.ErrFixtureStarted),
		errors.Is(err, services.ErrFixtureNotStarted),
		errors.Is(err, services.ErrMatchNotFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
