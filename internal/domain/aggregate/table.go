// Package aggregate builds the candidate-by-metric score table for a session
// and derives its summary statistics.
//
// The table is ephemeral: it is rebuilt from repository data on every request
// and never cached. A missing score is represented by absence from the row's
// cell map, never by a zero value, so callers can always tell "unscored" from
// a genuine zero.
package aggregate

import (
	"github.com/okian/recruitiq/internal/domain/model"
	"github.com/okian/recruitiq/internal/domain/registry"
)

// Row is one candidate's line in the score table.
type Row struct {
	Candidate model.Candidate

	// Cells maps metric name to the recorded value. A metric without a
	// recorded score for this candidate is absent from the map.
	Cells map[string]float64
}

// Value returns the cell for metric and whether a score was recorded.
func (r Row) Value(metric string) (float64, bool) {
	v, ok := r.Cells[metric]
	return v, ok
}

// Evaluated reports whether the candidate has at least one recorded score.
func (r Row) Evaluated() bool {
	return len(r.Cells) > 0
}

// Table is the candidate-by-metric score table for one session.
// Rows preserve the candidate listing order supplied by the repository;
// that order is the tie-break order used by the ranking engine.
type Table struct {
	rows    []Row
	active  []string
	metrics *registry.Registry
}

// Build assembles a Table from a session's candidates and their scores.
// Scores for metrics outside the registry are ignored; duplicate scores for
// the same (candidate, metric) pair keep the last value seen.
func Build(candidates []model.Candidate, scores map[string][]model.Score, metrics *registry.Registry) *Table {
	t := &Table{
		rows:    make([]Row, 0, len(candidates)),
		metrics: metrics,
	}

	seen := make(map[string]bool, metrics.Len())
	for _, cand := range candidates {
		row := Row{Candidate: cand, Cells: make(map[string]float64)}
		for _, s := range scores[cand.ID] {
			if !metrics.Contains(s.Metric) {
				continue
			}
			row.Cells[s.Metric] = s.Value
			seen[s.Metric] = true
		}
		t.rows = append(t.rows, row)
	}

	// Active set keeps registry order, not observation order.
	for _, name := range metrics.Names() {
		if seen[name] {
			t.active = append(t.active, name)
		}
	}
	return t
}

// Rows returns all candidate rows in listing order.
func (t *Table) Rows() []Row {
	return t.rows
}

// EvaluatedRows returns the rows with at least one recorded score, in listing
// order. Only these rows are eligible for ranking.
func (t *Table) EvaluatedRows() []Row {
	out := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if row.Evaluated() {
			out = append(out, row)
		}
	}
	return out
}

// ActiveMetrics returns the metrics with at least one recorded score in this
// session, in registry order.
func (t *Table) ActiveMetrics() []string {
	out := make([]string, len(t.active))
	copy(out, t.active)
	return out
}

// Registry returns the metric registry the table was built against.
func (t *Table) Registry() *registry.Registry {
	return t.metrics
}
