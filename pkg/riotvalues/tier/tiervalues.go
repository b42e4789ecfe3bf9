package tiervalues

import (
	"slices"
	"strings"
)

var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}

// IsValidTier verifies if the given tier exists, case insensitive.
func IsValidTier(tier string) bool {
	return slices.Contains(tierNames, Normalize(tier))
}

// Normalize uppercases and trims a tier name.
func Normalize(tier string) string {
	return strings.ToUpper(strings.TrimSpace(tier))
}

// TierNames returns the ordered tier list, from lowest to highest.
func TierNames() []string {
	return slices.Clone(tierNames)
}
