package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerShot_TableName(t *testing.T) {
	assert.Equal(t, "player_shots", PlayerShot{}.TableName())
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, Summary{}, s)
		assert.Zero(t, s.Pct())
	})

	t.Run("mixed", func(t *testing.T) {
		s := Summarize([]PlayerShot{
			{ShotMadeFlag: true},
			{ShotMadeFlag: false},
			{ShotMadeFlag: true},
			{ShotMadeFlag: false},
		})
		assert.Equal(t, 4, s.Attempts)
		assert.Equal(t, 2, s.Made)
		assert.InDelta(t, 0.5, s.Pct(), 1e-9)
	})
}
