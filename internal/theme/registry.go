// Package theme loads and caches slot theme configurations from JSON files.
// A theme file is named <key>.json and lives in the configured themes
// directory; its contents must pass full engine validation before the theme
// is ever served.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/engine"
	"github.com/spinworks/SlotEngine_Go/internal/validation"
)

// Cache sizing defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
)

// SchemaFileName is looked up under <dir>/schema; when present, theme files
// must pass it before they are unmarshalled
const SchemaFileName = "theme.schema.json"

// Registry serves validated theme configurations by key
type Registry struct {
	dir        string
	schemaPath string
	schemas    validation.SchemaValidator
	cache      *expirable.LRU[string, *domain.ThemeConfig]
}

// NewRegistry creates a Registry reading from dir with default cache settings
func NewRegistry(dir string) *Registry {
	return NewRegistryWithCache(dir, DefaultCacheSize, DefaultCacheTTL)
}

// NewRegistryWithCache creates a Registry with explicit cache size and TTL.
// The TTL bounds how long a theme edit on disk takes to become visible.
func NewRegistryWithCache(dir string, size int, ttl time.Duration) *Registry {
	r := &Registry{
		dir:   dir,
		cache: expirable.NewLRU[string, *domain.ThemeConfig](size, nil, ttl),
	}

	schemaPath := filepath.Join(dir, "schema", SchemaFileName)
	if _, err := os.Stat(schemaPath); err == nil {
		r.schemaPath = schemaPath
		r.schemas = validation.NewSchemaValidator()
	}
	return r
}

// Get returns the theme for key, loading and validating it on cache miss
func (r *Registry) Get(key string) (*domain.ThemeConfig, error) {
	if theme, ok := r.cache.Get(key); ok {
		return theme, nil
	}

	theme, err := r.load(key)
	if err != nil {
		return nil, err
	}

	r.cache.Add(key, theme)
	return theme, nil
}

// Keys lists the theme keys available on disk
func (r *Registry) Keys() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

// Invalidate drops a cached theme so the next Get rereads it from disk
func (r *Registry) Invalidate(key string) {
	r.cache.Remove(key)
}

func (r *Registry) load(key string) (*domain.ThemeConfig, error) {
	// Keys come from request paths; never let them traverse out of dir.
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return nil, fmt.Errorf("%w: %q", domain.ErrThemeNotFound, key)
	}

	path := filepath.Join(r.dir, key+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", domain.ErrThemeNotFound, key)
		}
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	if r.schemas != nil {
		if err := r.schemas.ValidateBytes(data, r.schemaPath); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfiguration, key, err)
		}
	}

	var theme domain.ThemeConfig
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfiguration, key, err)
	}

	if theme.Key == "" {
		theme.Key = key
	}
	if theme.Key != key {
		return nil, fmt.Errorf("%w: file %q declares key %q", domain.ErrInvalidConfiguration, key, theme.Key)
	}

	if err := engine.ValidateTheme(&theme); err != nil {
		return nil, err
	}

	return &theme, nil
}
