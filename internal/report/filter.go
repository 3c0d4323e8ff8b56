package report

import (
	"sort"
	"time"

	"github.com/controleponto/ponto/internal/punch"
)

// DetailTimeLayout is how timestamps are rendered in the detail table and
// the PDF body.
const DetailTimeLayout = "02/01/2006 15:04:05"

// FilterByDateRange keeps punches whose timestamp falls inside [start, end],
// inclusive on both ends. Punches without a timestamp never match.
func FilterByDateRange(punches []punch.Punch, start, end time.Time) []punch.Punch {
	var out []punch.Punch
	for _, p := range punches {
		if !p.HasTimestamp() {
			continue
		}
		if p.Timestamp.Before(start) || p.Timestamp.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByEmployee keeps punches whose name matches exactly, case-sensitive.
func FilterByEmployee(punches []punch.Punch, name string) []punch.Punch {
	var out []punch.Punch
	for _, p := range punches {
		if p.Nome == name {
			out = append(out, p)
		}
	}
	return out
}

// IrregularityCount is one employee's total of Irregular punches.
type IrregularityCount struct {
	Nome  string `json:"nome"`
	Total int    `json:"total"`
}

// IrregularityRanking groups Irregular punches by employee. Counts are
// sorted by name for stable output; max points at the employee with the
// highest total and is nil when there are no irregularities.
func IrregularityRanking(punches []punch.Punch) (counts []IrregularityCount, max *IrregularityCount) {
	totals := make(map[string]int)
	for _, p := range punches {
		if p.Status == punch.StatusIrregular {
			totals[p.Nome]++
		}
	}

	for nome, total := range totals {
		counts = append(counts, IrregularityCount{Nome: nome, Total: total})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Nome < counts[j].Nome })

	for i := range counts {
		if max == nil || counts[i].Total > max.Total {
			max = &counts[i]
		}
	}
	return counts, max
}

// StatusCount is one slice of the status distribution.
type StatusCount struct {
	Status punch.Status `json:"status"`
	Total  int          `json:"total"`
}

// StatusDistribution counts punches per status, every status included,
// most frequent first.
func StatusDistribution(punches []punch.Punch) []StatusCount {
	totals := make(map[punch.Status]int)
	for _, p := range punches {
		totals[p.Status]++
	}

	var counts []StatusCount
	for status, total := range totals {
		counts = append(counts, StatusCount{Status: status, Total: total})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Total != counts[j].Total {
			return counts[i].Total > counts[j].Total
		}
		return counts[i].Status < counts[j].Status
	})
	return counts
}

// DetailRow is one row of the dashboard detail table.
type DetailRow struct {
	Nome     string       `json:"nome"`
	Cargo    string       `json:"cargo"`
	DataHora string       `json:"data_hora"`
	Status   punch.Status `json:"status"`
}

// DetailRows renders punches for the detail table, in original order.
func DetailRows(punches []punch.Punch) []DetailRow {
	rows := make([]DetailRow, 0, len(punches))
	for _, p := range punches {
		row := DetailRow{Nome: p.Nome, Cargo: p.Cargo, Status: p.Status}
		if p.HasTimestamp() {
			row.DataHora = p.Timestamp.Format(DetailTimeLayout)
		}
		rows = append(rows, row)
	}
	return rows
}
