// Package settings provides the display configuration read once per refresh:
// an in-memory Static provider and a viper-backed file loader.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/hupe1980/lootsort/core"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LOOTSORT_SHOWENCHANTED=false
// or LOOTSORT_SORTORDER=byValueDesc,byName.
const EnvPrefix = "LOOTSORT"

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() core.Settings {
	return core.Settings{
		ShowEnchanted: true,
		ShowBookRead:  true,
	}
}

// Static is an in-memory SettingsProvider. It is safe for concurrent use;
// Settings returns a copy so callers never observe later updates mid-refresh.
type Static struct {
	settings core.Settings
	mu       sync.RWMutex
}

var _ core.SettingsProvider = (*Static)(nil)

// NewStatic creates a provider holding s.
func NewStatic(s core.Settings) *Static {
	return &Static{settings: clone(s)}
}

// Settings returns a snapshot of the current settings.
func (p *Static) Settings() core.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.settings)
}

// Update replaces the held settings.
func (p *Static) Update(s core.Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = clone(s)
}

func clone(s core.Settings) core.Settings {
	if s.SortOrder != nil {
		s.SortOrder = append([]string(nil), s.SortOrder...)
	}
	return s
}

// Load reads settings from path. The format follows the file extension
// (toml, yaml, yml or json). A missing file yields DefaultSettings; both
// paths honor LOOTSORT_* environment overrides.
func Load(path string) (*Static, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("showEnchanted", defaults.ShowEnchanted)
	v.SetDefault("showMuseumNew", defaults.ShowMuseumNew)
	v.SetDefault("showMuseumFound", defaults.ShowMuseumFound)
	v.SetDefault("showMuseumDisplayed", defaults.ShowMuseumDisplayed)
	v.SetDefault("showBookRead", defaults.ShowBookRead)
	v.SetDefault("sortOrder", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("settings: stat %s: %w", path, err)
			}
		} else {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("settings: read %s: %w", path, err)
			}
		}
	}

	var s core.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("settings: decode %s: %w", path, err)
	}
	s.SortOrder = normalizeOrder(s.SortOrder)
	return NewStatic(s), nil
}

// normalizeOrder trims names and drops empty ones, so an override such as
// "byValue, byName" resolves cleanly.
func normalizeOrder(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
