package handlers

import (
	"net/http"
	assetservice "riftview/api/services/assets"
	tiervalues "riftview/pkg/riotvalues/tier"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AssetHandler is the handler for the icon URL and localized name helpers.
type AssetHandler struct {
	AssetService *assetservice.Service
}

// AssetHandlerDependencies is the dependency list for the asset handler.
type AssetHandlerDependencies struct {
	AssetService *assetservice.Service
}

// NewAssetHandler creates a new instance of the asset handler.
func NewAssetHandler(deps *AssetHandlerDependencies) *AssetHandler {
	return &AssetHandler{
		AssetService: deps.AssetService,
	}
}

// Helper to bind a numeric id URI param.
func bindIntParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}

// GetVersion returns the resolved Data Dragon version.
func (h *AssetHandler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.AssetService.Version(c.Request.Context())})
}

// GetChampionIcon returns the champion icon URL.
func (h *AssetHandler) GetChampionIcon(c *gin.Context) {
	championId, ok := bindIntParam(c, "championId")
	if !ok {
		return
	}

	url := h.AssetService.ChampionIcon(c.Request.Context(), language(c), championId)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetChampionName returns the localized champion name.
func (h *AssetHandler) GetChampionName(c *gin.Context) {
	championId, ok := bindIntParam(c, "championId")
	if !ok {
		return
	}

	name := h.AssetService.ChampionName(c.Request.Context(), language(c), championId)
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// GetItemIcon returns the item icon URL.
func (h *AssetHandler) GetItemIcon(c *gin.Context) {
	itemId, ok := bindIntParam(c, "itemId")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.AssetService.ItemIcon(c.Request.Context(), itemId)})
}

// GetEmptySlot returns the empty item slot image URL.
func (h *AssetHandler) GetEmptySlot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.AssetService.EmptySlot()})
}

// GetRuneIcon returns the rune icon URL.
func (h *AssetHandler) GetRuneIcon(c *gin.Context) {
	runeId, ok := bindIntParam(c, "runeId")
	if !ok {
		return
	}

	url := h.AssetService.RuneIcon(c.Request.Context(), language(c), runeId)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetRuneStyleIcon returns the rune style icon URL.
func (h *AssetHandler) GetRuneStyleIcon(c *gin.Context) {
	styleId, ok := bindIntParam(c, "styleId")
	if !ok {
		return
	}

	url := h.AssetService.RuneStyleIcon(c.Request.Context(), language(c), styleId)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetSpellIcon returns the summoner spell icon URL.
func (h *AssetHandler) GetSpellIcon(c *gin.Context) {
	spellId, ok := bindIntParam(c, "spellId")
	if !ok {
		return
	}

	url := h.AssetService.SpellIcon(c.Request.Context(), language(c), spellId)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetRankEmblem returns the ranked emblem URL for a tier.
func (h *AssetHandler) GetRankEmblem(c *gin.Context) {
	tier := c.Param("tier")
	if !tiervalues.IsValidTier(tier) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.AssetService.RankEmblem(tiervalues.Normalize(tier))})
}
