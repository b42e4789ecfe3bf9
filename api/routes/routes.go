package routes

import (
	"riftview/api/handlers"
	"riftview/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	engine.Use(middleware.Metrics())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SummonerHandler:
			r.registerSummonerHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.AssetHandler:
			r.registerAssetHandler(handler)
		case *handlers.MetaHandler:
			r.registerMetaHandler(handler)
		}
	}
}

// Register the summoner handler.
func (r *Router) registerSummonerHandler(handler *handlers.SummonerHandler) {
	summoner := r.api.Group("/summoner/:region/:gameName/:gameTag")
	{
		summoner.GET("", handler.GetSummonerProfile)
		summoner.GET("/matches", handler.GetMatchHistory)
		summoner.GET("/champions", handler.GetChampionStats)
	}
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	match := r.api.Group("/match/:region/:matchId")
	{
		match.GET("", handler.GetFullMatchData)
		match.GET("/analysis", handler.GetEarlyAnalysis)
	}

	matchup := r.api.Group("/matchup/:region/:position/:championId/vs/:enemyChampionId")
	{
		matchup.GET("", handler.GetMatchup)
	}
}

// Register the asset handler.
func (r *Router) registerAssetHandler(handler *handlers.AssetHandler) {
	assets := r.api.Group("/assets")
	{
		assets.GET("/version", handler.GetVersion)
		assets.GET("/champion/:championId/icon", handler.GetChampionIcon)
		assets.GET("/champion/:championId/name", handler.GetChampionName)
		assets.GET("/item/:itemId/icon", handler.GetItemIcon)
		assets.GET("/empty-slot", handler.GetEmptySlot)
		assets.GET("/rune/:runeId/icon", handler.GetRuneIcon)
		assets.GET("/rune-style/:styleId/icon", handler.GetRuneStyleIcon)
		assets.GET("/spell/:spellId/icon", handler.GetSpellIcon)
		assets.GET("/rank/:tier/emblem", handler.GetRankEmblem)
	}
}

// Register the meta handler.
func (r *Router) registerMetaHandler(handler *handlers.MetaHandler) {
	meta := r.api.Group("/meta/:region")
	{
		meta.GET("/tierlist", handler.GetTierlist)
		meta.GET("/trends", handler.GetTrends)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
