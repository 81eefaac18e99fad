package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  ScoreBand
	}{
		{"limite superior", 100, ScoreBandExcellent},
		{"fronteira excellent", 75, ScoreBandExcellent},
		{"logo abaixo de excellent", 74.9, ScoreBandGood},
		{"fronteira good", 50, ScoreBandGood},
		{"logo abaixo de good", 49.9, ScoreBandAverage},
		{"fronteira average", 25, ScoreBandAverage},
		{"logo abaixo de average", 24.9, ScoreBandWeak},
		{"limite inferior", 0, ScoreBandWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandForScore(tt.score))
		})
	}
}

func TestFatigueStatusForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  FatigueStatus
	}{
		{"limite superior", 100, FatigueStatusFatigued},
		{"fronteira fatigued", 80, FatigueStatusFatigued},
		{"logo abaixo de fatigued", 79.9, FatigueStatusFatiguing},
		{"fronteira fatiguing", 60, FatigueStatusFatiguing},
		{"fronteira warning", 40, FatigueStatusWarning},
		{"fronteira healthy", 20, FatigueStatusHealthy},
		{"logo abaixo de healthy", 19.9, FatigueStatusFresh},
		{"limite inferior", 0, FatigueStatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FatigueStatusForScore(tt.score))
		})
	}
}

func TestStudioAsset_IsScored(t *testing.T) {
	assert.False(t, (*StudioAsset)(nil).IsScored())
	assert.False(t, (&StudioAsset{Spend: MinScoredSpend - 0.01}).IsScored())
	assert.True(t, (&StudioAsset{Spend: MinScoredSpend}).IsScored())
}
