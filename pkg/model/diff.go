package model

import "sort"

// DiffResult classifies every path in a snapshot relative to the baseline.
// The three sets are disjoint and each is sorted lexicographically so that
// event order within a category is deterministic.
type DiffResult struct {
	Created  []string `json:"created"`
	Deleted  []string `json:"deleted"`
	Modified []string `json:"modified"`
}

// Diff compares a baseline map against a freshly computed snapshot map.
func Diff(baseline, snapshot FingerprintMap) *DiffResult {
	r := &DiffResult{}
	for path, newDigest := range snapshot {
		oldDigest, existed := baseline[path]
		switch {
		case !existed:
			r.Created = append(r.Created, path)
		case oldDigest != newDigest:
			r.Modified = append(r.Modified, path)
		}
	}
	for path := range baseline {
		if _, exists := snapshot[path]; !exists {
			r.Deleted = append(r.Deleted, path)
		}
	}
	sort.Strings(r.Created)
	sort.Strings(r.Deleted)
	sort.Strings(r.Modified)
	return r
}

// Empty reports whether no changes were detected.
func (r *DiffResult) Empty() bool {
	return r.Total() == 0
}

// Total returns the number of changed paths across all categories.
func (r *DiffResult) Total() int {
	return len(r.Created) + len(r.Deleted) + len(r.Modified)
}

// ScanReport summarizes one baseline scan.
type ScanReport struct {
	RunID           string `json:"run_id"`
	BaselineExisted bool   `json:"baseline_existed"`
	FileCount       int    `json:"file_count"`
	Unreadable      int    `json:"unreadable"`
}
