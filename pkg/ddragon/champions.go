package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
)

// Champion is a single entry of the champion document.
type Champion struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Image Image  `json:"image"`
}

type championDocument struct {
	Data map[string]Champion `json:"data"`
}

// ChampionService resolves champions against the champion document.
type ChampionService struct {
	client *Client

	mu     sync.RWMutex
	parsed map[string]map[string]Champion
	byId   map[string]map[int]Champion
}

// NewChampionService creates a champion service on top of the shared client.
func NewChampionService(client *Client) *ChampionService {
	return &ChampionService{
		client: client,
		parsed: make(map[string]map[string]Champion),
		byId:   make(map[string]map[int]Champion),
	}
}

// Load returns the full champion map for a given language, keyed by champion key.
func (s *ChampionService) Load(ctx context.Context, language string) (map[string]Champion, error) {
	s.mu.RLock()
	if champions, ok := s.parsed[language]; ok {
		s.mu.RUnlock()
		return champions, nil
	}
	s.mu.RUnlock()

	raw, err := s.client.LoadDocument(ctx, "champion", "champion.json", language)
	if err != nil {
		return nil, err
	}

	var doc championDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse the champion document: %w", err)
	}

	// Index by the numeric key as well, the match data only carries the number.
	index := make(map[int]Champion, len(doc.Data))
	for _, champion := range doc.Data {
		if id, err := strconv.Atoi(champion.Key); err == nil {
			index[id] = champion
		}
	}

	s.mu.Lock()
	s.parsed[language] = doc.Data
	s.byId[language] = index
	s.mu.Unlock()

	return doc.Data, nil
}

// GetChampion resolves a champion by its string key, e.g. "Ahri".
func (s *ChampionService) GetChampion(ctx context.Context, language string, championKey string) (*Champion, error) {
	champions, err := s.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	champion, ok := champions[championKey]
	if !ok {
		return nil, fmt.Errorf("champion %s not found", championKey)
	}

	return &champion, nil
}

// GetChampionById resolves a champion by its numeric id.
func (s *ChampionService) GetChampionById(ctx context.Context, language string, championId int) (*Champion, error) {
	if _, err := s.Load(ctx, language); err != nil {
		return nil, err
	}

	s.mu.RLock()
	champion, ok := s.byId[language][championId]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("champion %d not found", championId)
	}

	return &champion, nil
}

// GetChampionName returns the localized champion name for a numeric id.
func (s *ChampionService) GetChampionName(ctx context.Context, language string, championId int) (string, error) {
	champion, err := s.GetChampionById(ctx, language, championId)
	if err != nil {
		return "", err
	}
	return champion.Name, nil
}

// ClearCache drops the parsed documents.
func (s *ChampionService) ClearCache() {
	s.mu.Lock()
	s.parsed = make(map[string]map[string]Champion)
	s.byId = make(map[string]map[int]Champion)
	s.mu.Unlock()
}
