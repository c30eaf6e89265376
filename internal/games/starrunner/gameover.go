package starrunner

import "fmt"

var gameOverTiers = []struct {
	below   int
	message string
}{
	{10, "Really? Thats the best you can do?"},
	{30, "Solid effort, but I know people who can do better."},
	{60, "Not bad... for a rookie."},
	{70, "Impressive."},
	{80, "You are blowing my expectations."},
	{100, "WOW!"},
	{120, "You are one of the greatest players this game has seen."},
}

// Verdict returns the one-line judgement for a final score.
func Verdict(score int) string {
	for _, tier := range gameOverTiers {
		if score < tier.below {
			return tier.message
		}
	}
	return "Legendary."
}

// GameOverMessage returns the label text shown when a run ends.
func GameOverMessage(score int) string {
	return fmt.Sprintf("%s FINAL SCORE: %d", Verdict(score), score)
}

// hitBy returns a guard predicate for touching any entity of a kind.
func hitBy(k Kind) Predicate {
	return func(s *State) bool {
		return s.collidesAny(k)
	}
}

// endGame returns the handler that records the end of a run.
func endGame(cause Kind) Handler {
	return func(s *State) {
		s.GameOver = true
		s.Cause = cause.String()
		s.Label = GameOverMessage(s.Score)
		s.log.Debug("game over", "cause", s.Cause, "score", s.Score)
	}
}
