package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDropRates(t *testing.T) {
	tests := []struct {
		name          string
		level, streak int
		luck          float64
		coinMax       int
		xpMax         int
		coinChance    float64
		xpChance      float64
	}{
		{"new member", 0, 0, 1.0, 20, 25, 0.05, 0.20},
		{"two week streak", 10, 14, 2.0, 70, 75, 0.10, 0.40},
		{"saturated luck", 3, 126, 10.0, 35, 40, 0.50, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := CalculateDropRates(tt.level, tt.streak)

			assert.Equal(t, tt.level, rates.Level)
			assert.Equal(t, tt.streak, rates.Streak)
			assert.InDelta(t, tt.luck, rates.LuckMultiplier, 1e-9)
			assert.Equal(t, 1, rates.Coin.Min)
			assert.Equal(t, 1, rates.XP.Min)
			assert.Equal(t, tt.coinMax, rates.Coin.Max)
			assert.Equal(t, tt.xpMax, rates.XP.Max)
			assert.InDelta(t, tt.coinChance, rates.Coin.HighTierChance, 1e-9)
			assert.InDelta(t, tt.xpChance, rates.XP.HighTierChance, 1e-9)
		})
	}
}
