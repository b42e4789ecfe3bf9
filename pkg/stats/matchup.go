package stats

// Advantage is the qualitative tier of a lane matchup win rate.
type Advantage string

const (
	StrongAdvantage    Advantage = "strong_advantage"
	SlightAdvantage    Advantage = "slight_advantage"
	Even               Advantage = "even"
	SlightDisadvantage Advantage = "slight_disadvantage"
	StrongDisadvantage Advantage = "strong_disadvantage"
)

// ClassifyAdvantage maps a matchup win rate percentage into a tier.
// Total on [0, 100]: >=55 strong, 52-54 slight, 49-51 even,
// 46-48 slight disadvantage, <=45 strong disadvantage.
func ClassifyAdvantage(winRate float64) Advantage {
	switch {
	case winRate >= 55:
		return StrongAdvantage
	case winRate >= 52:
		return SlightAdvantage
	case winRate >= 49:
		return Even
	case winRate >= 46:
		return SlightDisadvantage
	default:
		return StrongDisadvantage
	}
}

// Positions where a matchup comparison makes sense. The jungle has no
// direct lane opponent.
var comparablePositions = map[string]bool{
	"TOP":     true,
	"MIDDLE":  true,
	"BOTTOM":  true,
	"UTILITY": true,
}

// IsComparablePosition reports whether a matchup is defined for the position.
func IsComparablePosition(position string) bool {
	return comparablePositions[position]
}
