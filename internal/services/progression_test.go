package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	cfg := DefaultProgressionConfig()

	tests := []struct {
		xpTotal int
		want    int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{299, 3},
		{300, 4},
		{500, 5},
		{10_000, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.LevelFor(tt.xpTotal), "xpTotal=%d", tt.xpTotal)
	}
}

func TestLevelFor_MonotonicAndBounded(t *testing.T) {
	cfg := DefaultProgressionConfig()

	prev := 0
	for xp := 0; xp <= 1000; xp += 7 {
		level := cfg.LevelFor(xp)
		assert.GreaterOrEqual(t, level, 1)
		assert.LessOrEqual(t, level, cfg.MaxLevel)
		assert.GreaterOrEqual(t, level, prev, "level must not decrease at xp=%d", xp)
		prev = level
	}
}

func TestThresholdBounds(t *testing.T) {
	cfg := DefaultProgressionConfig()

	prev, next := cfg.ThresholdBounds(1)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 50, next)

	prev, next = cfg.ThresholdBounds(3)
	assert.Equal(t, 150, prev)
	assert.Equal(t, 300, next)

	// Au niveau max, les deux bornes pointent sur le dernier seuil
	prev, next = cfg.ThresholdBounds(5)
	assert.Equal(t, 300, prev)
	assert.Equal(t, 500, next)
}

func TestCheckPurchase(t *testing.T) {
	cfg := DefaultProgressionConfig()

	t.Run("unknown item", func(t *testing.T) {
		_, err := cfg.CheckPurchase("hat_fancy", 1000, nil)
		assert.ErrorIs(t, err, ErrUnknownItem)
	})

	t.Run("already owned", func(t *testing.T) {
		_, err := cfg.CheckPurchase("pot_white", 1000, []string{"pot_white"})
		assert.ErrorIs(t, err, ErrAlreadyOwned)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		_, err := cfg.CheckPurchase("pot_white", 99, nil)
		assert.ErrorIs(t, err, ErrInsufficientXP)
	})

	t.Run("ok", func(t *testing.T) {
		item, err := cfg.CheckPurchase("leaves_spring", 75, []string{"pot_terracotta"})
		require.NoError(t, err)
		assert.Equal(t, "leaves_spring", item.ID)
		assert.Equal(t, 75, item.Cost)
	})
}

// Scénario de référence: 3 rapports invasifs puis un achat à 75 XP
func TestProgressionScenario(t *testing.T) {
	cfg := DefaultProgressionConfig()

	xpTotal, xpBalance := 0, 0
	for i := 0; i < 3; i++ {
		xpTotal += cfg.AwardPerReport
		xpBalance += cfg.AwardPerReport
	}
	assert.Equal(t, 150, xpTotal)
	assert.Equal(t, 3, cfg.LevelFor(xpTotal))

	item, err := cfg.CheckPurchase("leaves_spring", xpBalance, nil)
	require.NoError(t, err)
	xpBalance -= item.Cost

	assert.Equal(t, 75, xpBalance)
	assert.Equal(t, 150, xpTotal, "purchases never touch lifetime XP")
	assert.Equal(t, 3, cfg.LevelFor(xpTotal), "purchases never touch level")
}

func TestFindCosmetic(t *testing.T) {
	cfg := DefaultProgressionConfig()

	item, ok := cfg.FindCosmetic("pot_terracotta")
	require.True(t, ok)
	assert.Equal(t, "Terracotta Pot", item.Label)
	assert.Equal(t, 50, item.Cost)

	_, ok = cfg.FindCosmetic("nonexistent")
	assert.False(t, ok)
}
