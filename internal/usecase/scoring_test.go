package usecase

import (
	"math"
	"strings"
	"testing"
)

func TestAccuracy(t *testing.T) {
	t.Run("exact guess scores 100", func(t *testing.T) {
		for _, price := range []float64{0.5, 1, 49.99, 100, 1999.99} {
			if got := Accuracy(price, price); got != 100 {
				t.Errorf("Accuracy(%v, %v) = %v, want 100", price, price, got)
			}
		}
	})

	t.Run("100 percent off scores exactly 0", func(t *testing.T) {
		if got := Accuracy(0, 100); got != 0 {
			t.Errorf("Accuracy(0, 100) = %v, want 0", got)
		}
	})

	t.Run("overshoot clamps at 0", func(t *testing.T) {
		if got := Accuracy(300, 100); got != 0 {
			t.Errorf("Accuracy(300, 100) = %v, want 0 (clamped)", got)
		}
		if got := Accuracy(5000, 10); got != 0 {
			t.Errorf("Accuracy(5000, 10) = %v, want 0 (clamped)", got)
		}
	})

	t.Run("close guess scores near 100", func(t *testing.T) {
		got := Accuracy(50, 49.99)
		if math.Abs(got-99.98) > 0.001 {
			t.Errorf("Accuracy(50, 49.99) = %v, want ~99.98", got)
		}
	})

	t.Run("strictly decreases as the guess moves away", func(t *testing.T) {
		actual := 100.0
		prev := Accuracy(actual, actual)
		for _, offset := range []float64{1, 5, 10, 25, 50, 75, 99} {
			above := Accuracy(actual+offset, actual)
			below := Accuracy(actual-offset, actual)
			if above != below {
				t.Errorf("asymmetric: Accuracy(%v)=%v vs Accuracy(%v)=%v",
					actual+offset, above, actual-offset, below)
			}
			if above >= prev {
				t.Errorf("accuracy did not decrease: offset %v gave %v, previous %v",
					offset, above, prev)
			}
			prev = above
		}
	})
}

func TestAccuracyTier(t *testing.T) {
	tests := []struct {
		accuracy    float64
		wantMessage string
		wantEmoji   string
	}{
		{100, "Perfect!", "🎯"},
		{95, "Perfect!", "🎯"},
		{94.999, "Excellent!", "🌟"},
		{85, "Excellent!", "🌟"},
		{84.9, "Great job!", "👏"},
		{70, "Great job!", "👏"},
		{69.9, "Not bad!", "👍"},
		{50, "Not bad!", "👍"},
		{49.9, "Keep trying!", "💪"},
		{30, "Keep trying!", "💪"},
		{29.9, "Way off!", "😅"},
		{0, "Way off!", "😅"},
	}

	for _, tt := range tests {
		message, emoji := AccuracyTier(tt.accuracy)
		if message != tt.wantMessage || emoji != tt.wantEmoji {
			t.Errorf("AccuracyTier(%v) = (%q, %q), want (%q, %q)",
				tt.accuracy, message, emoji, tt.wantMessage, tt.wantEmoji)
		}
	}
}

func TestScoreGuess(t *testing.T) {
	t.Run("near miss on 49.99 is a perfect tier", func(t *testing.T) {
		result := ScoreGuess(50, 49.99)
		if math.Abs(result.Accuracy-99.98) > 0.001 {
			t.Errorf("Accuracy = %v, want ~99.98", result.Accuracy)
		}
		if result.Message != "Perfect!" || result.Emoji != "🎯" {
			t.Errorf("tier = (%q, %q), want (Perfect!, 🎯)", result.Message, result.Emoji)
		}
	})

	t.Run("way off guess bottoms out", func(t *testing.T) {
		result := ScoreGuess(1000, 10)
		if result.Accuracy != 0 {
			t.Errorf("Accuracy = %v, want 0", result.Accuracy)
		}
		if result.Message != "Way off!" {
			t.Errorf("Message = %q, want Way off!", result.Message)
		}
	})
}

func TestShareText(t *testing.T) {
	scores := []float64{100, 90, 75, 55, 10}
	text := ShareText("2024-03-15", scores, "https://example.com")

	t.Run("contains the date key", func(t *testing.T) {
		if !strings.Contains(text, "2024-03-15") {
			t.Errorf("share text missing date: %q", text)
		}
	})

	t.Run("one emoji per round in order", func(t *testing.T) {
		if !strings.Contains(text, "🎯 🌟 👏 👍 😅") {
			t.Errorf("share text emoji row wrong: %q", text)
		}
	})

	t.Run("total over maximum possible", func(t *testing.T) {
		if !strings.Contains(text, "Score: 330/500") {
			t.Errorf("share text score wrong: %q", text)
		}
	})

	t.Run("contains play link", func(t *testing.T) {
		if !strings.Contains(text, "Play at: https://example.com") {
			t.Errorf("share text missing origin: %q", text)
		}
	})
}
