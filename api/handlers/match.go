package handlers

import (
	"net/http"
	"riftview/api/filters"
	matchservice "riftview/api/services/match"
	matchupservice "riftview/api/services/matchup"
	"riftview/pkg/messages"

	"github.com/gin-gonic/gin"
)

// MatchHandler is the handler for the match endpoints.
type MatchHandler struct {
	MatchService   *matchservice.MatchService
	MatchupService *matchupservice.MatchupService
}

// MatchHandlerDependencies is the dependency list for the match handler.
type MatchHandlerDependencies struct {
	MatchService   *matchservice.MatchService
	MatchupService *matchupservice.MatchupService
}

// NewMatchHandler creates a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		MatchService:   deps.MatchService,
		MatchupService: deps.MatchupService,
	}
}

// Helper to bind the default URI params for matches.
func (h *MatchHandler) bindURIParams(c *gin.Context) (*filters.MatchURIParams, error) {
	var mp filters.MatchURIParams
	if err := c.ShouldBindUri(&mp); err != nil {
		return nil, err
	}

	region, err := normalizeRegion(mp.Region)
	if err != nil {
		return nil, err
	}
	mp.Region = region

	return &mp, nil
}

// GetFullMatchData handles requests for the full match detail.
func (h *MatchHandler) GetFullMatchData(c *gin.Context) {
	mp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.MatchService.GetFullMatchData(c.Request.Context(), mp.Region, mp.MatchId, language(c))
	if err != nil {
		abortWithLookupError(c, err, messages.MatchNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetEarlyAnalysis handles requests for the early game lane comparison.
func (h *MatchHandler) GetEarlyAnalysis(c *gin.Context) {
	mp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.AnalysisParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.MatchService.GetEarlyAnalysis(c.Request.Context(), mp.Region, mp.MatchId, language(c), qp.Minute)
	if err != nil {
		abortWithLookupError(c, err, messages.MatchNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetMatchup handles requests for the lane matchup advantage.
// Responds 204 for positions without a lane opponent.
func (h *MatchHandler) GetMatchup(c *gin.Context) {
	var mp filters.MatchupURIParams
	if err := c.ShouldBindUri(&mp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := normalizeRegion(mp.Region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.MatchupService.GetMatchup(
		c.Request.Context(), mp.Position, mp.ChampionId, mp.EnemyChampionId, language(c))
	if err != nil {
		abortWithLookupError(c, err, "matchup not found")
		return
	}

	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
