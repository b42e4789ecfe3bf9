package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Item is a single entry of the item document.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Plaintext   string `json:"plaintext"`
	Image       Image  `json:"image"`
	Gold        Gold   `json:"gold"`
}

// Gold holds the item cost information.
type Gold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

// Image holds the sprite information of a Data Dragon asset.
type Image struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
}

type itemDocument struct {
	Data map[string]Item `json:"data"`
}

// ItemService resolves item ids against the item document.
type ItemService struct {
	client *Client

	mu     sync.RWMutex
	parsed map[string]map[string]Item
}

// NewItemService creates a item service on top of the shared client.
func NewItemService(client *Client) *ItemService {
	return &ItemService{
		client: client,
		parsed: make(map[string]map[string]Item),
	}
}

// Load returns the full item map for a given language.
func (s *ItemService) Load(ctx context.Context, language string) (map[string]Item, error) {
	s.mu.RLock()
	if items, ok := s.parsed[language]; ok {
		s.mu.RUnlock()
		return items, nil
	}
	s.mu.RUnlock()

	raw, err := s.client.LoadDocument(ctx, "item", "item.json", language)
	if err != nil {
		return nil, err
	}

	var doc itemDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse the item document: %w", err)
	}

	s.mu.Lock()
	s.parsed[language] = doc.Data
	s.mu.Unlock()

	return doc.Data, nil
}

// GetItem resolves a single item by its numeric id.
func (s *ItemService) GetItem(ctx context.Context, language string, itemId int) (*Item, error) {
	items, err := s.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	item, ok := items[fmt.Sprint(itemId)]
	if !ok {
		return nil, fmt.Errorf("item %d not found", itemId)
	}

	return &item, nil
}

// ClearCache drops the parsed documents.
func (s *ItemService) ClearCache() {
	s.mu.Lock()
	s.parsed = make(map[string]map[string]Item)
	s.mu.Unlock()
}
