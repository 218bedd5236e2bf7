package aggregate

// ExportRow is one candidate's line in the row-oriented export view.
// Values aligns with ExportView.Columns; a nil entry marks a missing score.
// Export adapters must render nil as an empty cell, never as a zero.
type ExportRow struct {
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Position        string     `json:"position,omitempty"`
	ExperienceYears int        `json:"experience_years"`
	Values          []*float64 `json:"values"`
}

// ExportView is the shape handed to export adapters: one row per candidate,
// metric columns in full registry order (not just the active set, so every
// export of a session carries the same columns).
type ExportView struct {
	Columns []string    `json:"columns"`
	Rows    []ExportRow `json:"rows"`
}

// Export builds the row-oriented export view of the table.
func (t *Table) Export() ExportView {
	view := ExportView{
		Columns: t.metrics.Names(),
		Rows:    make([]ExportRow, 0, len(t.rows)),
	}
	for _, row := range t.rows {
		er := ExportRow{
			Name:            row.Candidate.Name,
			Email:           row.Candidate.Email,
			Position:        row.Candidate.Position,
			ExperienceYears: row.Candidate.ExperienceYears,
			Values:          make([]*float64, len(view.Columns)),
		}
		for i, metric := range view.Columns {
			if v, ok := row.Value(metric); ok {
				val := v
				er.Values[i] = &val
			}
		}
		view.Rows = append(view.Rows, er)
	}
	return view
}
