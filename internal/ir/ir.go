package ir

import "time"

const Version = "1.0"

type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source,omitempty"`
	Version     string    `json:"version,omitempty"`

	Total          int         `json:"total"`
	Unique         int         `json:"unique"`
	DuplicateKinds int         `json:"duplicate_kinds"`
	Duplicates     []Duplicate `json:"duplicates"`
}

type Duplicate struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// HasDuplicates reports whether any code occurred more than once.
func (r *Report) HasDuplicates() bool { return len(r.Duplicates) > 0 }

type Diff struct {
	BaseSource string        `json:"base_source,omitempty"`
	HeadSource string        `json:"head_source,omitempty"`
	Summary    DiffSummary   `json:"summary"`
	New        []Duplicate   `json:"new"`
	Resolved   []Duplicate   `json:"resolved"`
	Changed    []DiffChanged `json:"changed"`
}

type DiffSummary struct {
	NewCount      int `json:"new"`
	ResolvedCount int `json:"resolved"`
	ChangedCount  int `json:"changed"`
}

type DiffChanged struct {
	Code      string `json:"code"`
	BaseCount int    `json:"base_count"`
	HeadCount int    `json:"head_count"`
}
