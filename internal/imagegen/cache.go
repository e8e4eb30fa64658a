package imagegen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lox/weathercard/internal/theme"
)

// Cache provides file-based caching for generated theme banners.
type Cache struct {
	dir    string
	maxAge time.Duration
}

// NewCache creates a banner cache in dir. Banners are refreshed after a week.
func NewCache(dir string) *Cache {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("imagegen: could not create banner cache directory: %v", err)
	}
	return &Cache{
		dir:    dir,
		maxAge: 7 * 24 * time.Hour,
	}
}

func (c *Cache) path(tag theme.Tag, mode theme.Mode) string {
	return filepath.Join(c.dir, fmt.Sprintf("banner_%s_%s.png", tag, mode))
}

// Get returns a cached banner if it exists and is not stale.
func (c *Cache) Get(tag theme.Tag, mode theme.Mode) ([]byte, bool) {
	path := c.path(tag, mode)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.maxAge {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a banner in the cache.
func (c *Cache) Set(tag theme.Tag, mode theme.Mode, data []byte) error {
	return os.WriteFile(c.path(tag, mode), data, 0644)
}

// List returns the tag/mode keys currently cached, e.g. "rain_dark".
func (c *Cache) List() []string {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "banner_") || filepath.Ext(name) != ".png" {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(name, "banner_"), ".png"))
	}
	return keys
}
