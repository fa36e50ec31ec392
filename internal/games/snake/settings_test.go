package snake

import (
	"errors"
	"testing"
	"time"
)

func TestSpeedTierIntervals(t *testing.T) {
	tests := []struct {
		tier     SpeedTier
		interval time.Duration
	}{
		{SpeedEasy, 50 * time.Millisecond},
		{SpeedNormal, 40 * time.Millisecond},
		{SpeedHard, 30 * time.Millisecond},
		{SpeedTier(42), 40 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := tc.tier.Interval(); got != tc.interval {
			t.Errorf("%s.Interval() = %v, expected %v", tc.tier, got, tc.interval)
		}
	}

	// Faster tiers tick more often.
	tiers := SpeedTiers()
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Interval() >= tiers[i-1].Interval() {
			t.Errorf("%s should be faster than %s", tiers[i], tiers[i-1])
		}
	}
}

func TestParseSpeedTier(t *testing.T) {
	for _, tier := range SpeedTiers() {
		got, err := ParseSpeedTier(tier.String())
		if err != nil || got != tier {
			t.Errorf("ParseSpeedTier(%q) = %v, %v", tier.String(), got, err)
		}
	}
	if got, err := ParseSpeedTier("HARD"); err != nil || got != SpeedHard {
		t.Errorf("ParseSpeedTier should ignore case, got %v, %v", got, err)
	}

	_, err := ParseSpeedTier("ludicrous")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "speed" {
		t.Errorf("expected speed ConfigError, got %v", err)
	}
}
