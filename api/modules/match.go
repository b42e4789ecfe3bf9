package modules

import (
	"riftview/api/handlers"
	assetservice "riftview/api/services/assets"
	matchservice "riftview/api/services/match"
	matchupservice "riftview/api/services/matchup"
)

func initializeMatchHandler(deps *ModuleDependencies, assetService *assetservice.Service) *handlers.MatchHandler {
	matchDeps := &matchservice.MatchServiceDeps{
		DB:     deps.DB,
		Assets: assetService,
	}

	matchService := matchservice.NewMatchService(matchDeps)

	matchupDeps := &matchupservice.MatchupServiceDeps{
		DB:     deps.DB,
		Assets: assetService,
	}

	matchupService := matchupservice.NewMatchupService(matchupDeps)

	matchHandlerDeps := &handlers.MatchHandlerDependencies{
		MatchService:   matchService,
		MatchupService: matchupService,
	}

	return handlers.NewMatchHandler(matchHandlerDeps)
}
