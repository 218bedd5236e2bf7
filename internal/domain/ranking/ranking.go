// Package ranking orders a session's evaluated candidates by one of three
// methods: single metric, weighted average, or composite score.
//
// The methods deliberately differ in how they treat a missing metric value:
//
//   - SingleMetric excludes candidates without a score for the chosen metric;
//     a candidate cannot be ranked by a value it does not have.
//   - WeightedAverage counts a missing value as a zero contribution; such
//     candidates stay rankable but are disadvantaged.
//   - Composite averages only the columns the candidate actually has, so a
//     missing metric neither excludes the candidate nor dilutes its mean.
//
// Ties are broken by preserving the candidates' listing order (stable sort).
package ranking

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/okian/recruitiq/internal/domain/aggregate"
)

// Method selects the ranking strategy. The set is closed; anything else is a
// configuration error.
type Method string

// Supported ranking methods.
const (
	// SingleMetric ranks by one metric's raw value.
	SingleMetric Method = "single_metric"

	// WeightedAverage ranks by the weighted sum over all active metrics,
	// missing values contributing zero.
	WeightedAverage Method = "weighted_average"

	// Composite ranks by the per-candidate mean over present metric values,
	// optionally min-max normalized per metric.
	Composite Method = "composite"
)

var validate = validator.New()

// Config carries the method selector and its parameters.
type Config struct {
	Method Method `json:"method" validate:"required,oneof=single_metric weighted_average composite"`

	// Metric names the ranking column for SingleMetric. It must be in the
	// session's active metric set. Ignored by the other methods.
	Metric string `json:"metric,omitempty"`

	// Weights assigns a weight in [0, 1] per active metric for
	// WeightedAverage. Unspecified metrics default to weight 1.0.
	Weights map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,min=0,max=1"`

	// TopN truncates the result. Values above the candidate count are
	// clamped down; zero or negative values are rejected.
	TopN int `json:"top_n"`

	// Normalize enables per-metric min-max scaling for Composite.
	Normalize bool `json:"normalize,omitempty"`
}

// Entry is one line of a ranking result.
type Entry struct {
	Rank        int     `json:"rank"`
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`

	// Values exposes the underlying raw per-metric values (present metrics
	// only) so callers can show how the score came about.
	Values map[string]float64 `json:"values"`
}

// Rank computes the configured ranking over the table's evaluated candidates.
// The result holds at most min(TopN, rankable candidates) entries, sorted
// non-increasing by score, with contiguous 1-based ranks. Candidates without
// any score never appear.
func Rank(table *aggregate.Table, cfg Config) ([]Entry, error) {
	active := table.ActiveMetrics()
	if err := validateConfig(cfg, active); err != nil {
		return nil, err
	}

	rows := table.EvaluatedRows()

	var scored []scoredRow
	switch cfg.Method {
	case SingleMetric:
		scored = scoreSingleMetric(rows, cfg.Metric)
	case WeightedAverage:
		scored = scoreWeightedAverage(rows, active, cfg.Weights)
	case Composite:
		scored = scoreComposite(rows, active, cfg.Normalize)
	}

	// Stable keeps the input listing order for equal scores. This tie-break
	// is part of the contract, not an accident of the sort.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := cfg.TopN
	if n > len(scored) {
		n = len(scored)
	}

	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		sr := scored[i]
		entries = append(entries, Entry{
			Rank:        i + 1,
			CandidateID: sr.row.Candidate.ID,
			Name:        sr.row.Candidate.Name,
			Score:       sr.score,
			Values:      copyCells(sr.row.Cells),
		})
	}
	return entries, nil
}

type scoredRow struct {
	row   aggregate.Row
	score float64
}

func validateConfig(cfg Config, active []string) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return configErrorf(fieldName(fe), "failed %q constraint", fe.Tag())
		}
		return configErrorf("config", "%v", err)
	}
	if cfg.TopN <= 0 {
		return configErrorf("top_n", "must be positive, got %d", cfg.TopN)
	}

	inActive := make(map[string]bool, len(active))
	for _, m := range active {
		inActive[m] = true
	}

	switch cfg.Method {
	case SingleMetric:
		if cfg.Metric == "" {
			return configErrorf("metric", "required for %s", SingleMetric)
		}
		if !inActive[cfg.Metric] {
			return configErrorf("metric", "%q is not in the active metric set", cfg.Metric)
		}
	case WeightedAverage:
		for m := range cfg.Weights {
			if !inActive[m] {
				return configErrorf("weights", "metric %q is not in the active metric set", m)
			}
		}
	}
	return nil
}

// scoreSingleMetric ranks by one metric's value; candidates without a score
// for that metric are excluded entirely.
func scoreSingleMetric(rows []aggregate.Row, metric string) []scoredRow {
	out := make([]scoredRow, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Value(metric)
		if !ok {
			continue
		}
		out = append(out, scoredRow{row: row, score: v})
	}
	return out
}

// scoreWeightedAverage sums weight*value over the active metrics, counting
// missing values as zero. Every evaluated candidate stays rankable.
func scoreWeightedAverage(rows []aggregate.Row, active []string, weights map[string]float64) []scoredRow {
	out := make([]scoredRow, 0, len(rows))
	for _, row := range rows {
		var sum float64
		for _, metric := range active {
			v, ok := row.Value(metric)
			if !ok {
				continue
			}
			w, ok := weights[metric]
			if !ok {
				w = 1.0
			}
			sum += v * w
		}
		out = append(out, scoredRow{row: row, score: sum})
	}
	return out
}

// scoreComposite averages each candidate's present metric values, optionally
// min-max normalized per metric across the current candidate set. A metric
// constant across all candidates normalizes to 0.0 for everyone: it carries
// no discriminating information.
func scoreComposite(rows []aggregate.Row, active []string, normalize bool) []scoredRow {
	var lo, hi map[string]float64
	if normalize {
		lo, hi = columnBounds(rows, active)
	}

	out := make([]scoredRow, 0, len(rows))
	for _, row := range rows {
		var sum float64
		var n int
		for _, metric := range active {
			v, ok := row.Value(metric)
			if !ok {
				continue
			}
			if normalize {
				if span := hi[metric] - lo[metric]; span > 0 {
					v = (v - lo[metric]) / span
				} else {
					v = 0.0
				}
			}
			sum += v
			n++
		}
		// Evaluated rows always have at least one present cell.
		out = append(out, scoredRow{row: row, score: sum / float64(n)})
	}
	return out
}

// columnBounds finds per-metric min and max over the present values.
func columnBounds(rows []aggregate.Row, active []string) (lo, hi map[string]float64) {
	lo = make(map[string]float64, len(active))
	hi = make(map[string]float64, len(active))
	for _, metric := range active {
		first := true
		for _, row := range rows {
			v, ok := row.Value(metric)
			if !ok {
				continue
			}
			if first || v < lo[metric] {
				lo[metric] = v
			}
			if first || v > hi[metric] {
				hi[metric] = v
			}
			first = false
		}
	}
	return lo, hi
}

func copyCells(cells map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(cells))
	for k, v := range cells {
		out[k] = v
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Method":
		return "method"
	case "Metric":
		return "metric"
	case "Weights":
		return "weights"
	case "TopN":
		return "top_n"
	case "Normalize":
		return "normalize"
	}
	return fe.Field()
}
