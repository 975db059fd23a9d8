package player

import "strings"

// Metric names a numeric field usable for ranking.
type Metric string

const (
	MetricGoals   Metric = "goals"
	MetricAssists Metric = "assists"
	MetricXG      Metric = "xg"
	MetricXAG     Metric = "xag"
)

// ParseMetric matches a metric name case-insensitively.
func ParseMetric(raw string) (Metric, bool) {
	switch Metric(strings.ToLower(strings.TrimSpace(raw))) {
	case MetricGoals:
		return MetricGoals, true
	case MetricAssists:
		return MetricAssists, true
	case MetricXG:
		return MetricXG, true
	case MetricXAG:
		return MetricXAG, true
	default:
		return "", false
	}
}

// Player is one tracked athlete for a season. Everything except ID and
// Name is nullable because the scraped source data is sparse. The raw
// Nationality, Position and Team encodings are opaque outside the
// normalization helpers.
type Player struct {
	ID            int64
	Name          string
	Nationality   string
	Position      string
	Team          string
	Age           *int
	MatchesPlayed *int
	Starts        *int
	Minutes       *int
	Goals         *int
	Assists       *int
	PKMade        *int
	XG            *float64
	XAG           *float64
}

// GoalsOrZero applies the absent-means-zero rule used for filtering
// and ranking; display keeps the null.
func (p Player) GoalsOrZero() int {
	return intOrZero(p.Goals)
}

func (p Player) AssistsOrZero() int {
	return intOrZero(p.Assists)
}

func (p Player) XGOrZero() float64 {
	return floatOrZero(p.XG)
}

func (p Player) XAGOrZero() float64 {
	return floatOrZero(p.XAG)
}

// MetricValue returns the ranking value of one metric with nulls as 0.
// Integer metrics are widened so a single comparator covers all four.
func (p Player) MetricValue(metric Metric) float64 {
	switch metric {
	case MetricGoals:
		return float64(p.GoalsOrZero())
	case MetricAssists:
		return float64(p.AssistsOrZero())
	case MetricXG:
		return p.XGOrZero()
	case MetricXAG:
		return p.XAGOrZero()
	default:
		return 0
	}
}

// ParsedTeam strips the country prefix from the raw team encoding
// ("eng Manchester City" -> "Manchester City"). A raw value without a
// space is returned whole.
func (p Player) ParsedTeam() string {
	parts := strings.Fields(p.Team)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return p.Team
}

// PositionTokens splits the possibly comma-joined raw position
// ("DF,MF") into trimmed uppercase tokens.
func (p Player) PositionTokens() []string {
	raw := strings.Split(strings.ToUpper(p.Position), ",")
	out := make([]string, 0, len(raw))
	for _, token := range raw {
		out = append(out, strings.TrimSpace(token))
	}
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
