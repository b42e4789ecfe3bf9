package handlers

import (
	"net/http"
	"riftview/api/filters"
	summonerservice "riftview/api/services/summoner"
	"riftview/pkg/messages"

	"github.com/gin-gonic/gin"
)

// SummonerHandler is the handler for the summoner endpoints.
type SummonerHandler struct {
	SummonerService *summonerservice.SummonerService
}

// SummonerHandlerDependencies is the dependency list for the summoner handler.
type SummonerHandlerDependencies struct {
	SummonerService *summonerservice.SummonerService
}

// NewSummonerHandler creates a new instance of the summoner handler.
func NewSummonerHandler(deps *SummonerHandlerDependencies) *SummonerHandler {
	return &SummonerHandler{
		SummonerService: deps.SummonerService,
	}
}

// Helper to bind the default URI params for summoners.
func (h *SummonerHandler) bindURIParams(c *gin.Context) (*filters.SummonerURIParams, error) {
	var sp filters.SummonerURIParams
	if err := c.ShouldBindUri(&sp); err != nil {
		return nil, err
	}

	region, err := normalizeRegion(sp.Region)
	if err != nil {
		return nil, err
	}
	sp.Region = region

	return &sp, nil
}

// GetSummonerProfile handles requests for the summoner profile.
func (h *SummonerHandler) GetSummonerProfile(c *gin.Context) {
	sp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.SummonerService.GetSummonerProfile(c.Request.Context(), sp.Region, sp.GameName, sp.GameTag)
	if err != nil {
		abortWithLookupError(c, err, messages.PlayerNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetMatchHistory handles requests for retrieving a player match history.
func (h *SummonerHandler) GetMatchHistory(c *gin.Context) {
	sp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.SummonerService.GetMatchHistory(
		c.Request.Context(), sp.Region, sp.GameName, sp.GameTag, language(c), qp.Queue, qp.Page)
	if err != nil {
		abortWithLookupError(c, err, messages.PlayerNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetChampionStats handles requests for the champion and position aggregates.
func (h *SummonerHandler) GetChampionStats(c *gin.Context) {
	sp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.ChampionStatsParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.SummonerService.GetChampionStats(
		c.Request.Context(), sp.Region, sp.GameName, sp.GameTag, language(c), qp.Queue)
	if err != nil {
		abortWithLookupError(c, err, messages.PlayerNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
