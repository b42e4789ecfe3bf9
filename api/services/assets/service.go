// Package assetservice resolves game data identifiers into icon URLs and
// localized names. Failures degrade per identifier to a placeholder value,
// they never abort sibling lookups.
package assetservice

import (
	"context"
	"log"
	"riftview/api/cache"
	"riftview/api/dto"
	"riftview/pkg/ddragon"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// Resolved icon URLs are kept until the daily static data revalidation.
const iconTTL = 12 * time.Hour

// Service is the icon URL and localized name resolver.
type Service struct {
	memCache  *cache.MemCache
	client    *ddragon.Client
	items     *ddragon.ItemService
	runes     *ddragon.RuneService
	spells    *ddragon.SummonerSpellService
	champions *ddragon.ChampionService
}

// ServiceDeps is the dependency list for the asset service.
type ServiceDeps struct {
	MemCache  *cache.MemCache
	Client    *ddragon.Client
	Items     *ddragon.ItemService
	Runes     *ddragon.RuneService
	Spells    *ddragon.SummonerSpellService
	Champions *ddragon.ChampionService
}

// NewService creates the asset service.
func NewService(deps *ServiceDeps) *Service {
	return &Service{
		memCache:  deps.MemCache,
		client:    deps.Client,
		items:     deps.Items,
		runes:     deps.Runes,
		spells:    deps.Spells,
		champions: deps.Champions,
	}
}

// Version returns the resolved Data Dragon version.
func (s *Service) Version(ctx context.Context) string {
	return s.client.Version(ctx)
}

// ChampionIcon resolves the champion icon URL, empty on failure.
func (s *Service) ChampionIcon(ctx context.Context, language string, championId int) string {
	key := cache.IconKey("champion", championId)
	if cached := s.memCache.GetString(key); cached != "" {
		return cached
	}

	champion, err := s.champions.GetChampionById(ctx, language, championId)
	if err != nil {
		log.Printf("couldn't resolve champion %d: %v", championId, err)
		return ""
	}

	url := ddragon.ChampionIconURL(s.client.Version(ctx), champion.ID)
	s.memCache.Set(key, url, iconTTL)
	return url
}

// ChampionName resolves the localized champion name.
// Falls back to the raw identifier.
func (s *Service) ChampionName(ctx context.Context, language string, championId int) string {
	key := cache.IconKey("champion-name:"+language, championId)
	if cached := s.memCache.GetString(key); cached != "" {
		return cached
	}

	name, err := s.champions.GetChampionName(ctx, language, championId)
	if err != nil {
		log.Printf("couldn't resolve champion name %d: %v", championId, err)
		return strconv.Itoa(championId)
	}

	s.memCache.Set(key, name, iconTTL)
	return name
}

// ItemIcon resolves the item icon URL. A zero id is the empty slot.
func (s *Service) ItemIcon(ctx context.Context, itemId int) string {
	if itemId == 0 {
		return ddragon.EmptySlotURL()
	}
	return ddragon.ItemIconURL(s.client.Version(ctx), itemId)
}

// ItemName resolves the localized item name, raw identifier on failure.
func (s *Service) ItemName(ctx context.Context, language string, itemId int) string {
	item, err := s.items.GetItem(ctx, language, itemId)
	if err != nil {
		log.Printf("couldn't resolve item %d: %v", itemId, err)
		return strconv.Itoa(itemId)
	}
	return item.Name
}

// SpellIcon resolves the summoner spell icon URL, empty on failure.
func (s *Service) SpellIcon(ctx context.Context, language string, spellId int) string {
	key := cache.IconKey("spell", spellId)
	if cached := s.memCache.GetString(key); cached != "" {
		return cached
	}

	spell, err := s.spells.GetSummonerSpell(ctx, language, spellId)
	if err != nil {
		log.Printf("couldn't resolve summoner spell %d: %v", spellId, err)
		return ""
	}

	url := ddragon.SummonerSpellIconURL(s.client.Version(ctx), spell.Image.Full)
	s.memCache.Set(key, url, iconTTL)
	return url
}

// RuneIcon resolves a rune icon URL, empty on failure.
func (s *Service) RuneIcon(ctx context.Context, language string, runeId int) string {
	key := cache.IconKey("rune", runeId)
	if cached := s.memCache.GetString(key); cached != "" {
		return cached
	}

	r, err := s.runes.GetRune(ctx, language, runeId)
	if err != nil {
		log.Printf("couldn't resolve rune %d: %v", runeId, err)
		return ""
	}

	url := ddragon.RuneIconURL(r.Icon)
	s.memCache.Set(key, url, iconTTL)
	return url
}

// RuneStyleIcon resolves a rune style icon URL, empty on failure.
func (s *Service) RuneStyleIcon(ctx context.Context, language string, styleId int) string {
	key := cache.IconKey("rune-style", styleId)
	if cached := s.memCache.GetString(key); cached != "" {
		return cached
	}

	style, err := s.runes.GetStyle(ctx, language, styleId)
	if err != nil {
		log.Printf("couldn't resolve rune style %d: %v", styleId, err)
		return ""
	}

	url := ddragon.RuneIconURL(style.Icon)
	s.memCache.Set(key, url, iconTTL)
	return url
}

// ProfileIcon resolves the summoner profile icon URL.
func (s *Service) ProfileIcon(ctx context.Context, profileIconId int) string {
	return ddragon.ProfileIconURL(s.client.Version(ctx), profileIconId)
}

// RankEmblem returns the ranked emblem URL for a tier.
func (s *Service) RankEmblem(tier string) string {
	return ddragon.RankEmblemURL(tier)
}

// EmptySlot returns the empty item slot image URL.
func (s *Service) EmptySlot() string {
	return ddragon.EmptySlotURL()
}

// ClearCache resets the resolved URLs and every static data cache.
func (s *Service) ClearCache(ctx context.Context) error {
	s.memCache.Clear()
	s.items.ClearCache()
	s.runes.ClearCache()
	s.spells.ClearCache()
	s.champions.ClearCache()
	return s.client.ClearCache(ctx)
}

// BatchRequest is the set of identifiers to resolve for a page.
type BatchRequest struct {
	Champions []int
	Items     []int
	Spells    []int
	Runes     []int
	Styles    []int
}

// MatchAssets holds the resolved URLs and names of a batch.
type MatchAssets struct {
	ChampionIcons map[int]string
	ChampionNames map[int]string
	ItemIcons     map[int]string
	SpellIcons    map[int]string
	RuneIcons     map[int]string
	StyleIcons    map[int]string
}

// ResolveBatch fans out one concurrent lookup batch per category and waits
// for all of them. Each goroutine only writes its own map, so no locking is
// needed. Individual failures already degraded inside the getters.
func (s *Service) ResolveBatch(ctx context.Context, language string, req BatchRequest) *MatchAssets {
	assets := &MatchAssets{
		ChampionIcons: make(map[int]string, len(req.Champions)),
		ChampionNames: make(map[int]string, len(req.Champions)),
		ItemIcons:     make(map[int]string, len(req.Items)),
		SpellIcons:    make(map[int]string, len(req.Spells)),
		RuneIcons:     make(map[int]string, len(req.Runes)),
		StyleIcons:    make(map[int]string, len(req.Styles)),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, id := range req.Champions {
			assets.ChampionIcons[id] = s.ChampionIcon(ctx, language, id)
			assets.ChampionNames[id] = s.ChampionName(ctx, language, id)
		}
		return nil
	})

	g.Go(func() error {
		for _, id := range req.Items {
			assets.ItemIcons[id] = s.ItemIcon(ctx, id)
		}
		return nil
	})

	g.Go(func() error {
		for _, id := range req.Spells {
			assets.SpellIcons[id] = s.SpellIcon(ctx, language, id)
		}
		return nil
	})

	g.Go(func() error {
		for _, id := range req.Runes {
			assets.RuneIcons[id] = s.RuneIcon(ctx, language, id)
		}
		return nil
	})

	g.Go(func() error {
		for _, id := range req.Styles {
			assets.StyleIcons[id] = s.RuneStyleIcon(ctx, language, id)
		}
		return nil
	})

	g.Wait()

	return assets
}

// CollectFromRecords gathers the unique identifiers of a set of participant records.
func CollectFromRecords(records []dto.ParticipantRecord) BatchRequest {
	champions := make(map[int]bool)
	items := make(map[int]bool)
	spells := make(map[int]bool)
	runes := make(map[int]bool)
	styles := make(map[int]bool)

	for _, record := range records {
		champions[record.ChampionId] = true

		for _, slot := range record.Items {
			if slot.ItemId != 0 {
				items[slot.ItemId] = true
			}
		}

		for _, slot := range record.Spells {
			spells[slot.SpellId] = true
		}

		runes[record.Runes.KeystoneId] = true
		for _, perk := range record.Runes.Perks {
			runes[perk] = true
		}

		styles[record.Runes.PrimaryStyleId] = true
		styles[record.Runes.SubStyleId] = true
	}

	return BatchRequest{
		Champions: keys(champions),
		Items:     keys(items),
		Spells:    keys(spells),
		Runes:     keys(runes),
		Styles:    keys(styles),
	}
}

// Decorate fills the icon URLs and names of a participant record in place.
func (a *MatchAssets) Decorate(record *dto.ParticipantRecord) {
	record.ChampionIconUrl = a.ChampionIcons[record.ChampionId]
	record.ChampionName = a.ChampionNames[record.ChampionId]
	if record.ChampionName == "" {
		record.ChampionName = strconv.Itoa(record.ChampionId)
	}

	for i := range record.Items {
		if record.Items[i].ItemId == 0 {
			record.Items[i].IconUrl = ddragon.EmptySlotURL()
			continue
		}
		record.Items[i].IconUrl = a.ItemIcons[record.Items[i].ItemId]
	}

	for i := range record.Spells {
		record.Spells[i].IconUrl = a.SpellIcons[record.Spells[i].SpellId]
	}

	record.Runes.KeystoneUrl = a.RuneIcons[record.Runes.KeystoneId]
	record.Runes.PrimaryStyleUrl = a.StyleIcons[record.Runes.PrimaryStyleId]
	record.Runes.SubStyleUrl = a.StyleIcons[record.Runes.SubStyleId]
}

func keys(set map[int]bool) []int {
	list := make([]int, 0, len(set))
	for id := range set {
		list = append(list, id)
	}
	return list
}
