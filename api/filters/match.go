package filters

// MatchURIParams are the URI params for the match endpoints.
type MatchURIParams struct {
	Region  string `uri:"region" binding:"required"`
	MatchId string `uri:"matchId" binding:"required"`
}

// AnalysisParams are the query params for the early game analysis.
type AnalysisParams struct {
	Minute int `form:"minute,default=14" binding:"omitempty,min=1,max=60"`
}

// MatchupURIParams are the URI params for the lane matchup endpoint.
type MatchupURIParams struct {
	Region          string `uri:"region" binding:"required"`
	Position        string `uri:"position" binding:"required"`
	ChampionId      int    `uri:"championId" binding:"required"`
	EnemyChampionId int    `uri:"enemyChampionId" binding:"required"`
}
