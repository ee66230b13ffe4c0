package scoring

import "testing"

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Rating
	}{
		{0, Poor},
		{50, Poor},
		{120, Poor},
		{121, Sufficient},
		{180, Sufficient},
		{220, Sufficient},
		{221, Good},
		{300, Good},
		{350, Good},
		{351, Excellent},
		{405, Excellent},
		// Out-of-band scores fall through to Poor; clamping should make
		// these unreachable but the band logic keeps the fallback.
		{-1, Poor},
		{406, Poor},
		{1000, Poor},
	}

	for _, tt := range tests {
		if got := RatingForScore(tt.score); got != tt.want {
			t.Errorf("RatingForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
