package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// RuneStyle is a rune tree from the runesReforged document.
type RuneStyle struct {
	ID    int        `json:"id"`
	Key   string     `json:"key"`
	Icon  string     `json:"icon"`
	Name  string     `json:"name"`
	Slots []RuneSlot `json:"slots"`
}

// RuneSlot is a row of selectable runes inside a style.
type RuneSlot struct {
	Runes []RuneInfo `json:"runes"`
}

// RuneInfo is a single selectable rune.
type RuneInfo struct {
	ID        int    `json:"id"`
	Key       string `json:"key"`
	Icon      string `json:"icon"`
	Name      string `json:"name"`
	ShortDesc string `json:"shortDesc"`
}

// The stat shards aren't part of the runesReforged document.
var statShards = map[int]RuneInfo{
	5001: {ID: 5001, Key: "HealthScaling", Name: "Health Scaling", Icon: "perk-images/StatMods/StatModsHealthScalingIcon.png"},
	5002: {ID: 5002, Key: "Armor", Name: "Armor", Icon: "perk-images/StatMods/StatModsArmorIcon.png"},
	5003: {ID: 5003, Key: "MagicRes", Name: "Magic Resist", Icon: "perk-images/StatMods/StatModsMagicResIcon.png"},
	5005: {ID: 5005, Key: "AttackSpeed", Name: "Attack Speed", Icon: "perk-images/StatMods/StatModsAttackSpeedIcon.png"},
	5007: {ID: 5007, Key: "CDRScaling", Name: "Ability Haste", Icon: "perk-images/StatMods/StatModsCDRScalingIcon.png"},
	5008: {ID: 5008, Key: "Adaptive", Name: "Adaptive Force", Icon: "perk-images/StatMods/StatModsAdaptiveForceIcon.png"},
	5011: {ID: 5011, Key: "Health", Name: "Health", Icon: "perk-images/StatMods/StatModsHealthPlusIcon.png"},
}

// RuneService resolves rune and rune style ids against the runesReforged document.
type RuneService struct {
	client *Client

	mu     sync.RWMutex
	parsed map[string][]RuneStyle
}

// NewRuneService creates a rune service on top of the shared client.
func NewRuneService(client *Client) *RuneService {
	return &RuneService{
		client: client,
		parsed: make(map[string][]RuneStyle),
	}
}

// Load returns the full rune style list for a given language.
func (s *RuneService) Load(ctx context.Context, language string) ([]RuneStyle, error) {
	s.mu.RLock()
	if styles, ok := s.parsed[language]; ok {
		s.mu.RUnlock()
		return styles, nil
	}
	s.mu.RUnlock()

	raw, err := s.client.LoadDocument(ctx, "runes", "runesReforged.json", language)
	if err != nil {
		return nil, err
	}

	var styles []RuneStyle
	if err := json.Unmarshal(raw, &styles); err != nil {
		return nil, fmt.Errorf("couldn't parse the rune document: %w", err)
	}

	s.mu.Lock()
	s.parsed[language] = styles
	s.mu.Unlock()

	return styles, nil
}

// GetRune resolves a single rune by id, searching every style and slot.
// Stat shards are resolved from the hard coded table.
func (s *RuneService) GetRune(ctx context.Context, language string, runeId int) (*RuneInfo, error) {
	if shard, ok := statShards[runeId]; ok {
		return &shard, nil
	}

	styles, err := s.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	for _, style := range styles {
		for _, slot := range style.Slots {
			for _, r := range slot.Runes {
				if r.ID == runeId {
					return &r, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("rune %d not found", runeId)
}

// GetStyle resolves a rune style (tree) by id.
func (s *RuneService) GetStyle(ctx context.Context, language string, styleId int) (*RuneStyle, error) {
	styles, err := s.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	for _, style := range styles {
		if style.ID == styleId {
			return &style, nil
		}
	}

	return nil, fmt.Errorf("rune style %d not found", styleId)
}

// ClearCache drops the parsed documents.
func (s *RuneService) ClearCache() {
	s.mu.Lock()
	s.parsed = make(map[string][]RuneStyle)
	s.mu.Unlock()
}
