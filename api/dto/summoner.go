package dto

// SummonerProfile is the profile payload for the summoner page.
type SummonerProfile struct {
	GameName       string      `json:"gameName"`
	Tagline        string      `json:"tagLine"`
	Region         string      `json:"region"`
	SummonerLevel  int         `json:"summonerLevel"`
	ProfileIconId  int         `json:"profileIconId"`
	ProfileIconUrl string      `json:"profileIconUrl"`
	Ranks          []RankEntry `json:"ranks"`
}

// RankEntry is a ranked queue entry of a summoner.
type RankEntry struct {
	Queue        string `json:"queue"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	WinRate      int    `json:"winRate"`
	EmblemUrl    string `json:"emblemUrl"`
}
