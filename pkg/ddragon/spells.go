package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// SummonerSpell is a single entry of the summoner spell document.
type SummonerSpell struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       Image  `json:"image"`
}

type spellDocument struct {
	Data map[string]SummonerSpell `json:"data"`
}

// Well known numeric spell ids mapped to the document keys.
// Saves a linear scan for the spells seen on virtually every match.
var wellKnownSpells = map[int]string{
	1:  "SummonerBoost",
	3:  "SummonerExhaust",
	4:  "SummonerFlash",
	6:  "SummonerHaste",
	7:  "SummonerHeal",
	11: "SummonerSmite",
	12: "SummonerTeleport",
	13: "SummonerMana",
	14: "SummonerDot",
	21: "SummonerBarrier",
	32: "SummonerSnowball",
}

// SummonerSpellService resolves summoner spell ids against the spell document.
type SummonerSpellService struct {
	client *Client

	mu     sync.RWMutex
	parsed map[string]map[string]SummonerSpell
}

// NewSummonerSpellService creates a spell service on top of the shared client.
func NewSummonerSpellService(client *Client) *SummonerSpellService {
	return &SummonerSpellService{
		client: client,
		parsed: make(map[string]map[string]SummonerSpell),
	}
}

// Load returns the full summoner spell map for a given language.
func (s *SummonerSpellService) Load(ctx context.Context, language string) (map[string]SummonerSpell, error) {
	s.mu.RLock()
	if spells, ok := s.parsed[language]; ok {
		s.mu.RUnlock()
		return spells, nil
	}
	s.mu.RUnlock()

	raw, err := s.client.LoadDocument(ctx, "summoner", "summoner.json", language)
	if err != nil {
		return nil, err
	}

	var doc spellDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse the summoner spell document: %w", err)
	}

	s.mu.Lock()
	s.parsed[language] = doc.Data
	s.mu.Unlock()

	return doc.Data, nil
}

// GetSummonerSpell resolves a spell by its numeric id.
// Tries the well known table first, then scans each record's own key field.
func (s *SummonerSpellService) GetSummonerSpell(ctx context.Context, language string, spellId int) (*SummonerSpell, error) {
	spells, err := s.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	if key, ok := wellKnownSpells[spellId]; ok {
		if spell, ok := spells[key]; ok {
			return &spell, nil
		}
	}

	numericKey := fmt.Sprint(spellId)
	for _, spell := range spells {
		if spell.Key == numericKey {
			return &spell, nil
		}
	}

	return nil, fmt.Errorf("summoner spell %d not found", spellId)
}

// ClearCache drops the parsed documents.
func (s *SummonerSpellService) ClearCache() {
	s.mu.Lock()
	s.parsed = make(map[string]map[string]SummonerSpell)
	s.mu.Unlock()
}
