package modules

import (
	"riftview/api/handlers"
	assetservice "riftview/api/services/assets"
)

func initializeAssetService(deps *ModuleDependencies) *assetservice.Service {
	assetDeps := &assetservice.ServiceDeps{
		MemCache:  deps.MemCache,
		Client:    deps.DDragonClient,
		Items:     deps.Items,
		Runes:     deps.Runes,
		Spells:    deps.Spells,
		Champions: deps.Champions,
	}

	return assetservice.NewService(assetDeps)
}

func initializeAssetHandler(assetService *assetservice.Service) *handlers.AssetHandler {
	assetHandlerDeps := &handlers.AssetHandlerDependencies{
		AssetService: assetService,
	}

	return handlers.NewAssetHandler(assetHandlerDeps)
}
