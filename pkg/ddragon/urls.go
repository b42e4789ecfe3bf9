package ddragon

import (
	"fmt"
	"strings"
)

// Community Dragon hosts the assets that Data Dragon doesn't carry.
const communityDragon = "https://raw.communitydragon.org/latest"

// ChampionIconURL builds the square champion icon URL, e.g. for "Ahri".
func ChampionIconURL(version string, championKey string) string {
	return fmt.Sprintf("%scdn/%s/img/champion/%s.png", DefaultBaseURL, version, championKey)
}

// ItemIconURL builds the item icon URL for a numeric item id.
func ItemIconURL(version string, itemId int) string {
	return fmt.Sprintf("%scdn/%s/img/item/%d.png", DefaultBaseURL, version, itemId)
}

// SummonerSpellIconURL builds the spell icon URL from the image file name.
func SummonerSpellIconURL(version string, imageFull string) string {
	return fmt.Sprintf("%scdn/%s/img/spell/%s", DefaultBaseURL, version, imageFull)
}

// RuneIconURL builds a rune or rune style icon URL from the document icon path.
// Rune images aren't versioned on the CDN.
func RuneIconURL(iconPath string) string {
	return fmt.Sprintf("%scdn/img/%s", DefaultBaseURL, iconPath)
}

// ProfileIconURL builds the summoner profile icon URL.
func ProfileIconURL(version string, profileIconId int) string {
	return fmt.Sprintf("%scdn/%s/img/profileicon/%d.png", DefaultBaseURL, version, profileIconId)
}

// RankEmblemURL builds the ranked emblem URL for a tier, e.g. "GOLD".
func RankEmblemURL(tier string) string {
	return fmt.Sprintf("%s/plugins/rcp-fe-lol-static-assets/global/default/images/ranked-mini-crests/%s.svg",
		communityDragon, strings.ToLower(tier))
}

// EmptySlotURL returns the image shown on unused item slots.
func EmptySlotURL() string {
	return fmt.Sprintf("%s/plugins/rcp-fe-lol-static-assets/global/default/images/item-slots/empty-slot.png",
		communityDragon)
}
