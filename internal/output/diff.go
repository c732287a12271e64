package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffResult holds the comparison of two status snapshots.
type DiffResult struct {
	Before      string  `json:"before"`
	After       string  `json:"after"`
	LineCount1  int     `json:"lines1"`
	LineCount2  int     `json:"lines2"`
	Similarity  float64 `json:"similarity"`
	UnifiedDiff string  `json:"diff,omitempty"`
}

// ComputeDiff compares two snapshot payloads taken at different times.
// The labels identify the two captures in the result.
func ComputeDiff(beforeLabel, beforeContent, afterLabel, afterContent string) *DiffResult {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(beforeContent, afterContent, true)

	dist := dmp.DiffLevenshtein(diffs)
	maxLen := len(beforeContent)
	if len(afterContent) > maxLen {
		maxLen = len(afterContent)
	}
	similarity := 0.0
	if maxLen > 0 {
		similarity = 1.0 - (float64(dist) / float64(maxLen))
	}

	patches := dmp.PatchMake(beforeContent, diffs)
	unified := dmp.PatchToText(patches)

	return &DiffResult{
		Before:      beforeLabel,
		After:       afterLabel,
		LineCount1:  len(strings.Split(beforeContent, "\n")),
		LineCount2:  len(strings.Split(afterContent, "\n")),
		Similarity:  similarity,
		UnifiedDiff: unified,
	}
}

// Identical reports whether the two captures had the same content.
func (d *DiffResult) Identical() bool {
	return d.UnifiedDiff == ""
}
