package scoring

// Dimension is one of the five top-level quality categories.
type Dimension string

const (
	Findability      Dimension = "Findability"
	Accessibility    Dimension = "Accessibility"
	Interoperability Dimension = "Interoperability"
	Reusability      Dimension = "Reusability"
	Context          Dimension = "Context"
)

// Dimensions lists the rubric's dimensions in reporting order.
var Dimensions = []Dimension{Findability, Accessibility, Interoperability, Reusability, Context}

// MaxPoints is each dimension's fixed point ceiling. A dimension's
// realized score is clamped here even if summed indicator weights would
// exceed it.
var MaxPoints = map[Dimension]int{
	Findability:      100,
	Accessibility:    100,
	Interoperability: 110,
	Reusability:      75,
	Context:          20,
}

// TotalMax is the grand total ceiling across all dimensions.
const TotalMax = 405

// IndicatorResult records one indicator's outcome for the audit trail.
type IndicatorResult struct {
	Indicator string    `json:"indicator"`
	Field     string    `json:"field"`
	Dimension Dimension `json:"dimension"`
	MaxPoints int       `json:"max_points"`
	Points    int       `json:"points"`
	Passed    bool      `json:"passed"`
}

// Result is the full scoring outcome for one dataset. Immutable once
// produced; persistence is the report sinks' business.
type Result struct {
	DimensionScores map[Dimension]int             `json:"dimension_scores"`
	Total           int                           `json:"total_score"`
	Rating          Rating                        `json:"rating"`
	Details         map[Dimension][]IndicatorResult `json:"detailed_results"`
}

func clamp(value, max int) int {
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}
