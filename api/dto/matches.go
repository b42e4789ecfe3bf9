package dto

import (
	"riftview/pkg/stats"
	"time"
)

// MatchMetadata holds a given match metadata.
type MatchMetadata struct {
	MatchId      string    `json:"matchId"`
	Region       string    `json:"region"`
	QueueId      int       `json:"queueId"`
	Queue        string    `json:"queue"`
	Duration     int       `json:"duration"`
	Date         time.Time `json:"date"`
	WinnerTeamId int       `json:"winnerTeamId"`
	Remake       bool      `json:"remake"`
}

// ItemSlot is one of the seven item slots with its resolved icon.
// A zero item id marks a empty slot.
type ItemSlot struct {
	ItemId  int    `json:"itemId"`
	IconUrl string `json:"iconUrl"`
}

// SpellSlot is a summoner spell with its resolved icon.
type SpellSlot struct {
	SpellId int    `json:"spellId"`
	IconUrl string `json:"iconUrl"`
}

// RunePage is the rune selection of a participant with resolved icons.
type RunePage struct {
	PrimaryStyleId  int    `json:"primaryStyleId"`
	PrimaryStyleUrl string `json:"primaryStyleUrl"`
	SubStyleId      int    `json:"subStyleId"`
	SubStyleUrl     string `json:"subStyleUrl"`
	KeystoneId      int    `json:"keystoneId"`
	KeystoneUrl     string `json:"keystoneUrl"`
	Perks           []int  `json:"perks"`
	StatShards      []int  `json:"statShards"`
}

// PingStats holds the ping counts of a participant.
type PingStats struct {
	AllIn         int `json:"allIn"`
	AssistMe      int `json:"assistMe"`
	Command       int `json:"command"`
	EnemyMissing  int `json:"enemyMissing"`
	EnemyVision   int `json:"enemyVision"`
	GetBack       int `json:"getBack"`
	Hold          int `json:"hold"`
	NeedVision    int `json:"needVision"`
	OnMyWay       int `json:"onMyWay"`
	Push          int `json:"push"`
	VisionCleared int `json:"visionCleared"`
}

// ParticipantRecord is the flat per player match record, enriched with
// icon URLs and localized names.
type ParticipantRecord struct {
	ParticipantId int    `json:"participantId"`
	TeamId        int    `json:"teamId"`
	Win           bool   `json:"win"`
	GameName      string `json:"gameName"`
	Tagline       string `json:"tagLine"`

	ChampionId      int    `json:"championId"`
	ChampionName    string `json:"championName"`
	ChampionIconUrl string `json:"championIconUrl"`
	ChampionLevel   int    `json:"championLevel"`

	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	Assists    int     `json:"assists"`
	Kda        float64 `json:"kda"`
	PerfectKda bool    `json:"perfectKda"`

	TotalCs     int     `json:"totalCs"`
	CsPerMinute float64 `json:"csPerMinute"`

	GoldEarned        int `json:"goldEarned"`
	DamageToChampions int `json:"damageToChampions"`
	DamageTaken       int `json:"damageTaken"`

	VisionScore  int `json:"visionScore"`
	WardsPlaced  int `json:"wardsPlaced"`
	WardsKilled  int `json:"wardsKilled"`
	ControlWards int `json:"controlWards"`

	Items  []ItemSlot  `json:"items"`
	Spells []SpellSlot `json:"spells"`
	Runes  RunePage    `json:"runes"`

	Position   string    `json:"position"`
	SkillOrder string    `json:"skillOrder"`
	Pings      PingStats `json:"pings"`
}

// MatchHistoryEntry is one match of the summoner page history list.
type MatchHistoryEntry struct {
	Metadata MatchMetadata     `json:"metadata"`
	Viewer   ParticipantRecord `json:"viewer"`
}

// FullMatchData is all available formatted data for a single match.
type FullMatchData struct {
	Metadata     MatchMetadata               `json:"metadata"`
	Participants []ParticipantRecord         `json:"participants"`
	Timelines    map[int][]stats.MinuteGroup `json:"timelines"`
}

// FrameSnapshot is the state of one participant at a timeline frame.
type FrameSnapshot struct {
	ParticipantId     int    `json:"participantId"`
	ChampionId        int    `json:"championId"`
	ChampionIconUrl   string `json:"championIconUrl"`
	Level             int    `json:"level"`
	Xp                int    `json:"xp"`
	TotalGold         int    `json:"totalGold"`
	Cs                int    `json:"cs"`
	DamageToChampions int    `json:"damageToChampions"`
}

// LaneAnalysis compares the two players of a lane at a given minute.
type LaneAnalysis struct {
	Position   string        `json:"position"`
	Blue       FrameSnapshot `json:"blue"`
	Red        FrameSnapshot `json:"red"`
	GoldDiff   int           `json:"goldDiff"`
	CsDiff     int           `json:"csDiff"`
	XpDiff     int           `json:"xpDiff"`
	DamageDiff int           `json:"damageDiff"`
}

// EarlyAnalysis is the per lane early game comparison of a match.
type EarlyAnalysis struct {
	MatchId string         `json:"matchId"`
	Minute  int            `json:"minute"`
	Lanes   []LaneAnalysis `json:"lanes"`
}
