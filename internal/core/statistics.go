package core

import "math"

// Statistics summarizes the read state of a library.
type Statistics struct {
	Total       int     `json:"total"`
	ReadCount   int     `json:"read_count"`
	PercentRead float64 `json:"percent_read"`
}

// Statistics counts total and read books. PercentRead is 0 for an empty
// library and otherwise rounded to two decimals.
func (l *Library) Statistics() Statistics {
	st := Statistics{Total: len(l.books)}

	for _, b := range l.books {
		if b.Read {
			st.ReadCount++
		}
	}

	if st.Total > 0 {
		pct := float64(st.ReadCount) / float64(st.Total) * 100
		st.PercentRead = math.Round(pct*100) / 100
	}

	return st
}
