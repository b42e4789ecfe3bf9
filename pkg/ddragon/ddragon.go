// Package ddragon provides cached access to the Data Dragon static game data.
//
// Documents are memoized per (kind, language) in memory and persisted on Redis
// with a 24 hour expiry. Concurrent loads for the same document share a single
// in flight request.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"riftview/pkg/config"
	"riftview/pkg/messages"
	"riftview/pkg/redis"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the public Data Dragon CDN.
	DefaultBaseURL = "https://ddragon.leagueoflegends.com/"

	// FallbackLanguage is used when a language specific document can't be fetched.
	FallbackLanguage = "en_US"

	cachePrefix = "ddragon:"
	versionKey  = "ddragon:versions"
	cacheTTL    = 24 * time.Hour
)

// Client fetches and caches raw Data Dragon documents.
type Client struct {
	httpClient     *http.Client
	redis          *redis.RedisClient
	baseURL        string
	defaultVersion string

	group singleflight.Group

	mu      sync.RWMutex
	version string
	memory  map[string][]byte
}

// NewClient creates a Data Dragon client.
// The Redis client is optional, without it only the in memory cache is used.
func NewClient(cfg config.DDragonConfig, redisClient *redis.RedisClient) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		redis:          redisClient,
		baseURL:        DefaultBaseURL,
		defaultVersion: cfg.DefaultVersion,
		memory:         make(map[string][]byte),
	}
}

// WithBaseURL overrides the CDN base URL. Mostly useful on tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Version resolves the current Data Dragon version.
// The result is memoized for the process lifetime. Falls back to the
// configured default version when the versions endpoint can't be reached.
func (c *Client) Version(ctx context.Context) string {
	c.mu.RLock()
	if c.version != "" {
		version := c.version
		c.mu.RUnlock()
		return version
	}
	c.mu.RUnlock()

	version, err, _ := c.group.Do("version", func() (any, error) {
		if c.redis != nil {
			if cached, err := c.redis.LIndex(ctx, versionKey, 0).Result(); err == nil && cached != "" {
				return cached, nil
			}
		}

		versions, err := c.fetchVersions(ctx)
		if err != nil {
			return c.defaultVersion, nil
		}

		return versions[0], nil
	})
	if err != nil {
		return c.defaultVersion
	}

	c.mu.Lock()
	c.version = version.(string)
	c.mu.Unlock()

	return version.(string)
}

// RefreshVersions fetches the versions list and stores the latest three on Redis.
func (c *Client) RefreshVersions(ctx context.Context) ([]string, error) {
	versions, err := c.fetchVersions(ctx)
	if err != nil {
		return nil, err
	}

	if c.redis != nil {
		if err := c.redis.Del(ctx, versionKey).Err(); err != nil {
			return nil, fmt.Errorf("couldn't delete the Redis key: %w", err)
		}
		c.redis.RPush(ctx, versionKey, versions[0], versions[1], versions[2])
	}

	c.mu.Lock()
	c.version = versions[0]
	c.mu.Unlock()

	return versions[:3], nil
}

// fetchVersions reads the full versions array from the CDN.
func (c *Client) fetchVersions(ctx context.Context) ([]string, error) {
	url := fmt.Sprint(c.baseURL, "api/versions.json")
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	if len(versions) < 3 {
		return nil, fmt.Errorf("no versions available")
	}

	return versions, nil
}

// LoadDocument returns the raw document for a given kind and language.
// Lookup order: memory, Redis, CDN. A non English fetch failure falls back
// to the English document; an English failure propagates.
func (c *Client) LoadDocument(ctx context.Context, kind string, path string, language string) ([]byte, error) {
	key := kind + ":" + language

	c.mu.RLock()
	if doc, ok := c.memory[key]; ok {
		c.mu.RUnlock()
		return doc, nil
	}
	c.mu.RUnlock()

	// Coalesce concurrent loads of the same document.
	doc, err, _ := c.group.Do(key, func() (any, error) {
		return c.loadDocument(ctx, key, path, language)
	})
	if err != nil {
		if language == FallbackLanguage {
			return nil, err
		}
		return c.LoadDocument(ctx, kind, path, FallbackLanguage)
	}

	return doc.([]byte), nil
}

func (c *Client) loadDocument(ctx context.Context, key string, path string, language string) ([]byte, error) {
	if c.redis != nil {
		if cached, err := c.redis.Get(ctx, cachePrefix+key); err == nil {
			doc := []byte(cached)
			c.storeMemory(key, doc)
			return doc, nil
		}
	}

	url := fmt.Sprintf("%scdn/%s/data/%s/%s", c.baseURL, c.Version(ctx), language, path)
	doc, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.redis != nil {
		if err := c.redis.Set(ctx, cachePrefix+key, doc, cacheTTL); err != nil {
			// The document is still usable, the persisted cache is best effort.
			log.Printf("couldn't persist the %s document: %v", key, err)
		}
	}

	c.storeMemory(key, doc)
	return doc, nil
}

// ForceRefresh drops a single document from every cache layer and loads it again.
func (c *Client) ForceRefresh(ctx context.Context, kind string, path string, language string) ([]byte, error) {
	key := kind + ":" + language

	c.mu.Lock()
	delete(c.memory, key)
	c.mu.Unlock()

	if c.redis != nil {
		c.redis.Del(ctx, cachePrefix+key)
	}

	return c.LoadDocument(ctx, kind, path, language)
}

// ClearCache resets all in memory and persisted state unconditionally.
func (c *Client) ClearCache(ctx context.Context) error {
	c.mu.Lock()
	c.memory = make(map[string][]byte)
	c.version = ""
	c.mu.Unlock()

	if c.redis == nil {
		return nil
	}

	return c.redis.DeleteByPrefix(ctx, cachePrefix)
}

func (c *Client) storeMemory(key string, doc []byte) {
	c.mu.Lock()
	c.memory[key] = doc
	c.mu.Unlock()
}

// get runs a plain GET against the CDN and returns the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
