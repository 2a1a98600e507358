package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/priceguesser/backend/internal/domain"
)

// accuracyTier maps an inclusive accuracy lower bound to its feedback
type accuracyTier struct {
	Min     float64
	Message string
	Emoji   string
}

// accuracyTiers is evaluated top-down; the final tier catches everything
var accuracyTiers = []accuracyTier{
	{Min: 95, Message: "Perfect!", Emoji: "🎯"},
	{Min: 85, Message: "Excellent!", Emoji: "🌟"},
	{Min: 70, Message: "Great job!", Emoji: "👏"},
	{Min: 50, Message: "Not bad!", Emoji: "👍"},
	{Min: 30, Message: "Keep trying!", Emoji: "💪"},
	{Min: 0, Message: "Way off!", Emoji: "😅"},
}

// Accuracy scores a guess against the actual price: 100 minus the
// percentage the guess is off by, floored at 0. An exact guess scores
// 100. actual must be positive; product validation guarantees that for
// anything the resolver hands out.
func Accuracy(guess, actual float64) float64 {
	difference := math.Abs(guess - actual)
	percentageOff := (difference / actual) * 100
	return math.Max(0, 100-percentageOff)
}

// AccuracyTier returns the message and emoji for an accuracy score
func AccuracyTier(accuracy float64) (message, emoji string) {
	for _, tier := range accuracyTiers {
		if accuracy >= tier.Min {
			return tier.Message, tier.Emoji
		}
	}
	last := accuracyTiers[len(accuracyTiers)-1]
	return last.Message, last.Emoji
}

// ScoreGuess scores one guess and attaches its tier feedback
func ScoreGuess(guess, actual float64) domain.GuessResult {
	accuracy := Accuracy(guess, actual)
	message, emoji := AccuracyTier(accuracy)
	return domain.GuessResult{
		Accuracy: accuracy,
		Message:  message,
		Emoji:    emoji,
	}
}

// ShareText composes the plain-text share summary for a finished day:
// date key, one emoji per round, total score, and a play link.
func ShareText(dateKey string, scores []float64, origin string) string {
	emojis := make([]string, len(scores))
	total := 0.0
	for i, score := range scores {
		_, emoji := AccuracyTier(score)
		emojis[i] = emoji
		total += score
	}

	return fmt.Sprintf("IKEA Price Guesser %s\n%s\nScore: %d/%d\n\nPlay at: %s",
		dateKey,
		strings.Join(emojis, " "),
		int(math.Round(total)),
		domain.RoundsPerDay*100,
		origin)
}
