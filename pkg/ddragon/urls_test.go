package ddragon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconURLs(t *testing.T) {
	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/15.9.1/img/champion/Ahri.png",
		ChampionIconURL("15.9.1", "Ahri"))

	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/15.9.1/img/item/1055.png",
		ItemIconURL("15.9.1", 1055))

	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/15.9.1/img/spell/SummonerFlash.png",
		SummonerSpellIconURL("15.9.1", "SummonerFlash.png"))

	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/img/perk-images/Styles/Domination/Electrocute/Electrocute.png",
		RuneIconURL("perk-images/Styles/Domination/Electrocute/Electrocute.png"))

	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/15.9.1/img/profileicon/588.png",
		ProfileIconURL("15.9.1", 588))
}

func TestRankEmblemURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.communitydragon.org/latest/plugins/rcp-fe-lol-static-assets/global/default/images/ranked-mini-crests/gold.svg",
		RankEmblemURL("GOLD"))
}
