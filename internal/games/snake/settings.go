package snake

import (
	"fmt"
	"strings"
	"time"
)

// SpeedTier is one of the selectable tick cadences, slowest first.
type SpeedTier int

const (
	SpeedEasy SpeedTier = iota
	SpeedNormal
	SpeedHard
)

var speedIntervals = [...]time.Duration{
	SpeedEasy:   50 * time.Millisecond,
	SpeedNormal: 40 * time.Millisecond,
	SpeedHard:   30 * time.Millisecond,
}

// SpeedTiers returns every tier in order.
func SpeedTiers() []SpeedTier {
	return []SpeedTier{SpeedEasy, SpeedNormal, SpeedHard}
}

// Valid reports whether s is a known tier.
func (s SpeedTier) Valid() bool {
	return s >= SpeedEasy && s <= SpeedHard
}

// Interval returns the time between ticks for the tier.
func (s SpeedTier) Interval() time.Duration {
	if !s.Valid() {
		return speedIntervals[SpeedNormal]
	}
	return speedIntervals[s]
}

func (s SpeedTier) String() string {
	switch s {
	case SpeedEasy:
		return "easy"
	case SpeedNormal:
		return "normal"
	case SpeedHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseSpeedTier maps a tier name (case-insensitive) to its value.
func ParseSpeedTier(name string) (SpeedTier, error) {
	for _, s := range SpeedTiers() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, &ConfigError{Field: "speed", Value: name, Reason: "expected easy, normal or hard"}
}

// Config holds the player's settings. It outlives rounds and only changes
// through Engine.ApplySettings.
type Config struct {
	Speed SpeedTier
	Theme int // Opaque to the engine, interpreted by the renderer
}

// DefaultConfig returns the normal speed with the first theme.
func DefaultConfig() Config {
	return Config{Speed: SpeedNormal}
}

// Validate checks that the settings are in range.
func (c Config) Validate() error {
	if !c.Speed.Valid() {
		return &ConfigError{Field: "speed", Value: int(c.Speed), Reason: "unknown speed tier"}
	}
	if c.Theme < 0 {
		return &ConfigError{Field: "theme", Value: c.Theme, Reason: "must not be negative"}
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("speed=%s theme=%d", c.Speed, c.Theme)
}
