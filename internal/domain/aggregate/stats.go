package aggregate

// Stats summarizes a session's score table.
//
// HasData distinguishes "no scores recorded yet" from a table whose scores
// are all zero: Mean and Max are only meaningful when HasData is true.
type Stats struct {
	Candidates int     `json:"candidates"`
	Evaluated  int     `json:"evaluated"`
	Mean       float64 `json:"mean"`
	Max        float64 `json:"max"`
	HasData    bool    `json:"has_data"`
}

// Stats computes summary statistics over all present cells of the table.
func (t *Table) Stats() Stats {
	st := Stats{Candidates: len(t.rows)}

	var sum float64
	var n int
	for _, row := range t.rows {
		if !row.Evaluated() {
			continue
		}
		st.Evaluated++
		for _, metric := range t.active {
			v, ok := row.Value(metric)
			if !ok {
				continue
			}
			sum += v
			n++
			if !st.HasData || v > st.Max {
				st.Max = v
			}
			st.HasData = true
		}
	}
	if st.HasData {
		st.Mean = sum / float64(n)
	}
	return st
}
