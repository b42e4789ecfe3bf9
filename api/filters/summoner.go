package filters

// SummonerURIParams are the URI params shared by the summoner endpoints.
type SummonerURIParams struct {
	Region   string `uri:"region" binding:"required"`
	GameName string `uri:"gameName" binding:"required"`
	GameTag  string `uri:"gameTag" binding:"required"`
}

// MatchHistoryParams are the query params for the match history.
type MatchHistoryParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Queue int `form:"queue" binding:"omitempty"`
}

// ChampionStatsParams are the query params for the champion aggregates.
type ChampionStatsParams struct {
	Queue int `form:"queue" binding:"omitempty"`
}
