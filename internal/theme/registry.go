// Package theme holds the colour themes a player can pick in the settings.
// Themes register themselves in init(); the engine only stores a theme's
// index, so the registration order is the stable numbering.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme maps each semantic colour role to a terminal colour. Values are
// ANSI 256-colour codes or "#rrggbb" hex strings.
type Theme struct {
	Name    string
	Title   string
	Palette map[core.Color]string
}

// Color returns the terminal colour for a role, or "" for the terminal default.
func (t Theme) Color(c core.Color) string {
	return t.Palette[c]
}

var (
	themes []Theme
	byName = make(map[string]int)
	mu     sync.RWMutex
)

// Register adds a theme to the catalogue.
// Panics if a theme with the same name is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	key := strings.ToLower(t.Name)
	if _, exists := byName[key]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.Name))
	}
	byName[key] = len(themes)
	themes = append(themes, t)
}

// List returns all themes in registration order.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, len(themes))
	copy(result, themes)
	return result
}

// Count returns the number of registered themes.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(themes)
}

// ByIndex returns the theme at index i, falling back to the first theme for
// an unknown index.
func ByIndex(i int) Theme {
	mu.RLock()
	defer mu.RUnlock()

	if len(themes) == 0 {
		return Theme{Name: "none", Title: "None"}
	}
	if i < 0 || i >= len(themes) {
		return themes[0]
	}
	return themes[i]
}

// IndexOf looks up a theme by name (case-insensitive).
func IndexOf(name string) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("theme: unknown theme %q", name)
	}
	return i, nil
}
