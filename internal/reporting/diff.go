package reporting

import (
	"io"
	"sort"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

// BuildDiff compares the duplicate sets of two reports. A code is New when
// only head duplicates it, Resolved when only base does, and Changed when
// both do with different counts.
func BuildDiff(base, head *ir.Report) ir.Diff {
	bm := indexDuplicates(base)
	hm := indexDuplicates(head)

	added := []ir.Duplicate{}
	resolved := []ir.Duplicate{}
	changed := []ir.DiffChanged{}

	// additions & changes
	for code, hc := range hm {
		bc, ok := bm[code]
		if !ok {
			added = append(added, ir.Duplicate{Code: code, Count: hc})
			continue
		}
		if bc != hc {
			changed = append(changed, ir.DiffChanged{Code: code, BaseCount: bc, HeadCount: hc})
		}
	}
	// removals
	for code, bc := range bm {
		if _, ok := hm[code]; !ok {
			resolved = append(resolved, ir.Duplicate{Code: code, Count: bc})
		}
	}

	// stable sort
	sort.Slice(added, func(i, j int) bool { return added[i].Code < added[j].Code })
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Code < resolved[j].Code })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Code < changed[j].Code })

	return ir.Diff{
		BaseSource: base.Source,
		HeadSource: head.Source,
		Summary: ir.DiffSummary{
			NewCount:      len(added),
			ResolvedCount: len(resolved),
			ChangedCount:  len(changed),
		},
		New:      added,
		Resolved: resolved,
		Changed:  changed,
	}
}

func WriteDiffJSON(w io.Writer, d *ir.Diff) error {
	return encodeIndented(w, d)
}

func indexDuplicates(rep *ir.Report) map[string]int {
	m := make(map[string]int, len(rep.Duplicates))
	for _, d := range rep.Duplicates {
		m[d.Code] = d.Count
	}
	return m
}
