package modules

import (
	"riftview/api/cache"
	"riftview/api/handlers"
	"riftview/pkg/config"
	"riftview/pkg/ddragon"
	"riftview/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	SummonerHandler *handlers.SummonerHandler
	MatchHandler    *handlers.MatchHandler
	AssetHandler    *handlers.AssetHandler
	MetaHandler     *handlers.MetaHandler
}

// ModuleDependencies holds the shared infrastructure used by every handler.
type ModuleDependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.RedisClient
	MemCache *cache.MemCache

	DDragonClient *ddragon.Client
	Items         *ddragon.ItemService
	Runes         *ddragon.RuneService
	Spells        *ddragon.SummonerSpellService
	Champions     *ddragon.ChampionService
}

// NewModuleDependencies wires the shared infrastructure for the handlers.
func NewModuleDependencies(cfg *config.Config, db *gorm.DB, redisClient *redis.RedisClient) *ModuleDependencies {
	ddragonClient := ddragon.NewClient(cfg.DDragon, redisClient)

	return &ModuleDependencies{
		Config:   cfg,
		DB:       db,
		Redis:    redisClient,
		MemCache: cache.NewMemCache(),

		DDragonClient: ddragonClient,
		Items:         ddragon.NewItemService(ddragonClient),
		Runes:         ddragon.NewRuneService(ddragonClient),
		Spells:        ddragon.NewSummonerSpellService(ddragonClient),
		Champions:     ddragon.NewChampionService(ddragonClient),
	}
}

// NewModule creates a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	assetService := initializeAssetService(deps)

	return &Module{
		Router:          router,
		SummonerHandler: initializeSummonerHandler(deps, assetService),
		MatchHandler:    initializeMatchHandler(deps, assetService),
		AssetHandler:    initializeAssetHandler(assetService),
		MetaHandler:     handlers.NewMetaHandler(),
	}
}
