package handlers

import (
	"net/http"
	tiervalues "riftview/pkg/riotvalues/tier"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the meta tierlist and trends endpoints.
// Both are placeholders until the rating pipeline lands, they answer a
// stable shape so the pages can already be built against them.
type MetaHandler struct{}

// NewMetaHandler creates a new instance of the meta handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetTierlist handles requests for the champion meta tierlist.
func (h *MetaHandler) GetTierlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"region":      c.Param("region"),
			"tiers":       tiervalues.TierNames(),
			"entries":     []any{},
			"placeholder": true,
		},
	})
}

// GetTrends handles requests for the trending topics feed.
func (h *MetaHandler) GetTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"topics":      []any{},
			"placeholder": true,
		},
	})
}
