package tally

import (
	"reflect"
	"testing"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

func TestCount_TotalsAndOrder(t *testing.T) {
	tb := Count([]string{"X", "Y", "X", "Z", "Y", "X"})

	if tb.Total != 6 || tb.Unique() != 3 {
		t.Fatalf("total=%d unique=%d, want 6/3", tb.Total, tb.Unique())
	}
	if got := tb.Codes(); !reflect.DeepEqual(got, []string{"X", "Y", "Z"}) {
		t.Fatalf("first-seen order = %v", got)
	}
	for code, want := range map[string]int{"X": 3, "Y": 2, "Z": 1, "W": 0} {
		if got := tb.CountOf(code); got != want {
			t.Fatalf("CountOf(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestDuplicates_CountDescending(t *testing.T) {
	got := Count([]string{"X", "Y", "X", "Z", "Y", "X"}).Duplicates()
	want := []ir.Duplicate{{Code: "X", Count: 3}, {Code: "Y", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDuplicates_TiesKeepFirstSeenOrder(t *testing.T) {
	codes := []string{"b", "a", "c", "a", "b", "d", "c", "d", "d"}
	got := Count(codes).Duplicates()
	want := []ir.Duplicate{
		{Code: "d", Count: 3},
		{Code: "b", Count: 2},
		{Code: "a", Count: 2},
		{Code: "c", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := 0; i < 10; i++ {
		if again := Count(codes).Duplicates(); !reflect.DeepEqual(again, want) {
			t.Fatalf("tie order not stable on run %d: %v", i, again)
		}
	}
}

func TestDuplicates_NoneWhenDistinct(t *testing.T) {
	for _, codes := range [][]string{nil, {}, {"A"}, {"A", "B", "C"}} {
		got := Count(codes).Duplicates()
		if got == nil || len(got) != 0 {
			t.Fatalf("codes %v: want empty non-nil slice, got %#v", codes, got)
		}
	}
}

func TestBuildReport_SummaryConsistency(t *testing.T) {
	codes := []string{"A1", "A1", "B2", "C3", "C3", "C3", "D4"}
	rep := BuildReport("history.json", codes)

	if rep.ID == "" || rep.GeneratedAt.IsZero() {
		t.Fatalf("report should be stamped: id=%q at=%v", rep.ID, rep.GeneratedAt)
	}
	if rep.Source != "history.json" || rep.Version != ir.Version {
		t.Fatalf("source=%q version=%q", rep.Source, rep.Version)
	}
	if rep.Total != len(codes) || rep.Unique != 4 || rep.DuplicateKinds != 2 {
		t.Fatalf("total=%d unique=%d kinds=%d", rep.Total, rep.Unique, rep.DuplicateKinds)
	}
	if rep.DuplicateKinds != len(rep.Duplicates) {
		t.Fatalf("kinds %d != listed duplicates %d", rep.DuplicateKinds, len(rep.Duplicates))
	}
	for _, d := range rep.Duplicates {
		n := 0
		for _, c := range codes {
			if c == d.Code {
				n++
			}
		}
		if d.Count != n || d.Count < 2 {
			t.Fatalf("duplicate %q reported %d, occurs %d", d.Code, d.Count, n)
		}
	}
	if other := BuildReport("history.json", codes); other.ID == rep.ID {
		t.Fatalf("report IDs must differ between runs")
	}
}
