// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
//
// This file implements the edit-script computation step: aligning the
// old and new identity orders with an LCS and coalescing the aligned
// runs into the minimal SpliceDiff/UpdateDiff list.
package timeline

// =============================================================================
// ALIGNMENT
// =============================================================================

// alignKind classifies one aligned element.
type alignKind int

const (
	alignKept    alignKind = iota // present in both orders
	alignRemoved                  // present only in the old order
	alignAdded                    // present only in the new order
)

// alignEntry is one element of the alignment walk, in output order.
type alignEntry struct {
	kind alignKind
	id   string
}

// alignIDs computes a three-way classification of oldIDs vs newIDs.
// The expected workload is a handful of localized edits against a long
// stable timeline, so the common prefix and suffix are stripped before
// the quadratic LCS table is built; the table then only covers the
// small divergent core.
func alignIDs(oldIDs, newIDs []string) []alignEntry {
	prefix := 0
	for prefix < len(oldIDs) && prefix < len(newIDs) && oldIDs[prefix] == newIDs[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldIDs)-prefix && suffix < len(newIDs)-prefix &&
		oldIDs[len(oldIDs)-1-suffix] == newIDs[len(newIDs)-1-suffix] {
		suffix++
	}

	oldCore := oldIDs[prefix : len(oldIDs)-suffix]
	newCore := newIDs[prefix : len(newIDs)-suffix]

	entries := make([]alignEntry, 0, prefix+len(oldCore)+len(newCore)+suffix)
	for _, id := range oldIDs[:prefix] {
		entries = append(entries, alignEntry{kind: alignKept, id: id})
	}

	lcs := longestCommonSubsequence(oldCore, newCore)
	oldIdx, newIdx, lcsIdx := 0, 0, 0
	for oldIdx < len(oldCore) || newIdx < len(newCore) {
		switch {
		case lcsIdx < len(lcs) &&
			oldIdx < len(oldCore) && newIdx < len(newCore) &&
			oldCore[oldIdx] == newCore[newIdx] &&
			oldCore[oldIdx] == lcs[lcsIdx]:
			entries = append(entries, alignEntry{kind: alignKept, id: oldCore[oldIdx]})
			oldIdx++
			newIdx++
			lcsIdx++
		case oldIdx < len(oldCore) && (lcsIdx >= len(lcs) || oldCore[oldIdx] != lcs[lcsIdx]):
			entries = append(entries, alignEntry{kind: alignRemoved, id: oldCore[oldIdx]})
			oldIdx++
		default:
			entries = append(entries, alignEntry{kind: alignAdded, id: newCore[newIdx]})
			newIdx++
		}
	}

	for _, id := range oldIDs[len(oldIDs)-suffix:] {
		entries = append(entries, alignEntry{kind: alignKept, id: id})
	}
	return entries
}

// longestCommonSubsequence computes the LCS of two identity slices via
// the classic DP table with backtracking.
func longestCommonSubsequence(a, b []string) []string {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	lcs := make([]string, dp[m][n])
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			lcs[dp[i][j]-1] = a[i-1]
			i--
			j--
		} else if dp[i-1][j] >= dp[i][j-1] {
			i--
		} else {
			j--
		}
	}
	return lcs
}

// =============================================================================
// EDIT-SCRIPT COMPUTATION
// =============================================================================

// computeScript walks the alignment of oldIDs vs newIDs left to right
// and batches it into the minimal operation list. Adjacent removals and
// additions coalesce into one SpliceDiff (remove then insert at the
// same position); adjacent kept-but-updated elements coalesce into one
// UpdateDiff. Update runs never cross a splice boundary.
//
// Positions in the emitted operations refer to the list's state as of
// that point in replay: pos tracks the length of the already-processed
// prefix of the new order.
func computeScript(oldIDs, newIDs []string, updated map[string]struct{}, items map[string]Item) []Op {
	var (
		ops       []Op
		pos       int
		nRemovals int
		additions []Item
		nUpdates  int
	)

	flushUpdates := func() {
		if nUpdates > 0 {
			ops = append(ops, UpdateDiff{Pos: pos, NumItems: nUpdates})
			pos += nUpdates
			nUpdates = 0
		}
	}
	flushSplice := func() {
		if nRemovals > 0 || len(additions) > 0 {
			ops = append(ops, SpliceDiff{Pos: pos, NumRemovals: nRemovals, Additions: additions})
			pos += len(additions)
			nRemovals = 0
			additions = nil
		}
	}

	for _, entry := range alignIDs(oldIDs, newIDs) {
		switch entry.kind {
		case alignRemoved:
			flushUpdates()
			nRemovals++
		case alignAdded:
			flushUpdates()
			additions = append(additions, items[entry.id])
		case alignKept:
			flushSplice()
			if _, ok := updated[entry.id]; ok {
				nUpdates++
			} else {
				flushUpdates()
				pos++ // unchanged element, no operation emitted
			}
		}
	}
	flushSplice()
	flushUpdates()

	return ops
}
