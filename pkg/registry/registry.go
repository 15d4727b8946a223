// Package registry holds the themes and presets installed by the host
// application. A Registry is created once at startup and passed to whatever
// needs lookups; there is no package-level instance.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/preset"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/theme"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// ErrNotFound is returned by Resolve for an unknown preset or theme id.
var ErrNotFound = errors.New("not found")

// Installer is the registration surface handed to theme and system authors.
type Installer interface {
	InstallTheme(id string, seed theme.Seed) error
	InstallPreset(id string, p preset.Preset) error
}

var _ Installer = (*Registry)(nil)

// Registry stores normalized themes and presets by id. Installing an id
// that already exists replaces the previous entry.
type Registry struct {
	mu      sync.RWMutex
	themes  map[string]theme.Theme
	presets map[string]preset.Preset
	logger  *zap.Logger
}

// New creates an empty registry. A nil logger discards log output.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		themes:  make(map[string]theme.Theme),
		presets: make(map[string]preset.Preset),
		logger:  logger,
	}
}

// InstallTheme validates and normalizes seed and stores the result under
// id. On error nothing is stored.
func (r *Registry) InstallTheme(id string, seed theme.Seed) error {
	if err := checkID(id); err != nil {
		return fmt.Errorf("registry: install theme: %w", err)
	}
	t, err := theme.Normalize(seed)
	if err != nil {
		return fmt.Errorf("registry: install theme %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[id]; exists {
		r.logger.Warn("theme replaced", zap.String("id", id))
	}
	r.themes[id] = t
	r.logger.Debug("theme installed",
		zap.String("id", id),
		zap.String("display_name", t.DisplayName),
	)
	return nil
}

// InstallPreset validates p, including that its defaultTheme is already
// installed, and stores it under id. On error nothing is stored.
func (r *Registry) InstallPreset(id string, p preset.Preset) error {
	if err := checkID(id); err != nil {
		return fmt.Errorf("registry: install preset: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	norm, err := preset.Normalize(p, func(themeID string) bool {
		_, ok := r.themes[themeID]
		return ok
	})
	if err != nil {
		return fmt.Errorf("registry: install preset %q: %w", id, err)
	}

	if _, exists := r.presets[id]; exists {
		r.logger.Warn("preset replaced", zap.String("id", id))
	}
	r.presets[id] = norm
	r.logger.Debug("preset installed",
		zap.String("id", id),
		zap.String("display_name", norm.DisplayName),
		zap.String("default_theme", norm.DefaultTheme),
	)
	return nil
}

// InstallBuiltins installs the built-in themes, then the built-in presets.
func (r *Registry) InstallBuiltins() error {
	seeds := theme.Builtins()
	for _, id := range theme.BuiltinIDs() {
		if err := r.InstallTheme(id, seeds[id]); err != nil {
			return err
		}
	}
	presets := preset.Builtins()
	for _, id := range preset.BuiltinIDs() {
		if err := r.InstallPreset(id, presets[id]); err != nil {
			return err
		}
	}
	r.logger.Info("builtins installed",
		zap.Int("themes", len(seeds)),
		zap.Int("presets", len(presets)),
	)
	return nil
}

// Theme returns a copy of the theme installed under id.
func (r *Registry) Theme(id string) (theme.Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[id]
	if !ok {
		return theme.Theme{}, false
	}
	return t.Clone(), true
}

// Preset returns a copy of the preset installed under id.
func (r *Registry) Preset(id string) (preset.Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[id]
	if !ok {
		return preset.Preset{}, false
	}
	return p.Clone(), true
}

// HasTheme reports whether a theme is installed under id.
func (r *Registry) HasTheme(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[id]
	return ok
}

// ThemeIDs returns the installed theme ids, sorted.
func (r *Registry) ThemeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.themes)
}

// PresetIDs returns the installed preset ids, sorted.
func (r *Registry) PresetIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.presets)
}

// Resolve returns the preset installed under presetID together with the
// theme it renders with: themeOverride when non-empty, otherwise the
// preset's defaultTheme.
func (r *Registry) Resolve(presetID, themeOverride string) (preset.Preset, theme.Theme, error) {
	p, ok := r.Preset(presetID)
	if !ok {
		return preset.Preset{}, theme.Theme{}, fmt.Errorf("registry: preset %q: %w", presetID, ErrNotFound)
	}
	themeID := p.DefaultTheme
	if themeOverride != "" {
		themeID = themeOverride
	}
	t, ok := r.Theme(themeID)
	if !ok {
		return preset.Preset{}, theme.Theme{}, fmt.Errorf("registry: theme %q: %w", themeID, ErrNotFound)
	}
	return p, t, nil
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return validation.Errorf("id", "is required")
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
