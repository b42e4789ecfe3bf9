package modules

import (
	"riftview/api/handlers"
	assetservice "riftview/api/services/assets"
	summonerservice "riftview/api/services/summoner"
)

func initializeSummonerHandler(deps *ModuleDependencies, assetService *assetservice.Service) *handlers.SummonerHandler {
	summonerDeps := &summonerservice.SummonerServiceDeps{
		DB:     deps.DB,
		Assets: assetService,
	}

	summonerService := summonerservice.NewSummonerService(summonerDeps)

	summonerHandlerDeps := &handlers.SummonerHandlerDependencies{
		SummonerService: summonerService,
	}

	return handlers.NewSummonerHandler(summonerHandlerDeps)
}
