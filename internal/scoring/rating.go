package scoring

// Rating is the ordinal quality label derived from the total score.
// The labels are the English renderings of the reference rubric's
// German categories (Ausgezeichnet, Gut, Ausreichend, Mangelhaft).
type Rating string

const (
	Excellent  Rating = "Excellent"
	Good       Rating = "Good"
	Sufficient Rating = "Sufficient"
	Poor       Rating = "Poor"
)

// RatingForScore maps a total score to its rating band. The bands are
// closed and exhaustive over 0-405; anything outside that range falls
// through to Poor, which the band logic keeps reachable on purpose even
// though clamping should make it impossible.
func RatingForScore(score int) Rating {
	switch {
	case score >= 351 && score <= TotalMax:
		return Excellent
	case score >= 221 && score <= 350:
		return Good
	case score >= 121 && score <= 220:
		return Sufficient
	default:
		return Poor
	}
}
