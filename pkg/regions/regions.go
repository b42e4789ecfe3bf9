package regions

// Simple package containing the region list.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// IsValidSubRegion verifies if a given region is a known sub region.
func IsValidSubRegion(region string) bool {
	for _, subRegions := range RegionList {
		for _, sub := range subRegions {
			if string(sub) == region {
				return true
			}
		}
	}
	return false
}
