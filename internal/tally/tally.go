package tally

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

// Table maps each distinct code to its occurrence count and remembers the
// order in which codes were first seen.
type Table struct {
	Total  int
	order  []string
	counts map[string]int
}

func Count(codes []string) Table {
	t := Table{Total: len(codes), counts: make(map[string]int, len(codes))}
	for _, c := range codes {
		if _, seen := t.counts[c]; !seen {
			t.order = append(t.order, c)
		}
		t.counts[c]++
	}
	return t
}

func (t Table) Unique() int { return len(t.order) }

func (t Table) CountOf(code string) int { return t.counts[code] }

// Codes returns distinct codes in first-seen order.
func (t Table) Codes() []string {
	return append([]string(nil), t.order...)
}

// Duplicates returns codes seen more than once, count descending.
// Equal counts keep first-seen order.
func (t Table) Duplicates() []ir.Duplicate {
	out := []ir.Duplicate{}
	for _, c := range t.order {
		if n := t.counts[c]; n > 1 {
			out = append(out, ir.Duplicate{Code: c, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// BuildReport tallies codes into a report stamped with a fresh ID.
func BuildReport(source string, codes []string) ir.Report {
	t := Count(codes)
	dups := t.Duplicates()
	return ir.Report{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Source:         source,
		Version:        ir.Version,
		Total:          t.Total,
		Unique:         t.Unique(),
		DuplicateKinds: len(dups),
		Duplicates:     dups,
	}
}
