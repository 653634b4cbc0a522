package storage

import "testing"

func TestEloDelta(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		opponent int
		score    float64
		want     int
	}{
		{"equal ratings win", 1200, 1200, 1, 16},
		{"equal ratings loss", 1200, 1200, 0, -16},
		{"favourite wins small", 1400, 1200, 1, 8},
		{"favourite loses big", 1400, 1200, 0, -24},
		{"underdog wins big", 1200, 1400, 1, 24},
		{"underdog loses small", 1200, 1400, 0, -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EloDelta(tt.rating, tt.opponent, tt.score); got != tt.want {
				t.Errorf("EloDelta(%d, %d, %v) = %d, want %d", tt.rating, tt.opponent, tt.score, got, tt.want)
			}
		})
	}
}

func TestEloDelta_ZeroSum(t *testing.T) {
	for _, pair := range [][2]int{{1200, 1200}, {1350, 1180}, {1000, 2000}} {
		winGain := EloDelta(pair[0], pair[1], 1)
		lossDrop := EloDelta(pair[1], pair[0], 0)
		if winGain+lossDrop != 0 {
			t.Errorf("ratings %v: winner +%d and loser %d do not cancel", pair, winGain, lossDrop)
		}
	}
}
