// Package merge deduplicates and orders the concatenated record streams
// produced by the collection sources. It performs no I/O; extractors are
// responsible for populating the identity fields before records get here.
package merge

import (
	"sort"

	"github.com/studiowebux/keycli/internal/types"
)

// Merge reduces the concatenated raw record list to one record per
// identity key and returns them in deterministic order.
//
// Within a key group the survivor is the record with the strictly
// greatest priority; on a priority tie the earliest-seen record wins.
// The result is ordered by priority descending, then context ascending,
// then shortcut ascending, so identical input multisets always produce
// byte-identical output regardless of collection order.
func Merge(records []types.ShortcutRecord) []types.ShortcutRecord {
	seen := make(map[string]int, len(records))
	merged := make([]types.ShortcutRecord, 0, len(records))

	for _, r := range records {
		key := r.Key()
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(merged)
			merged = append(merged, r)
			continue
		}
		if r.Priority > merged[idx].Priority {
			merged[idx] = r
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Context != b.Context {
			return a.Context < b.Context
		}
		return a.Shortcut < b.Shortcut
	})
	return merged
}
