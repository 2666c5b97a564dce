package report

import "sort"

// Buckets holds grouped sales totals keyed by group, preserving the order
// in which keys were first seen.
type Buckets struct {
	index   map[string]int
	entries []ReportEntry
}

// Len returns the number of distinct groups.
func (b *Buckets) Len() int {
	return len(b.entries)
}

func (b *Buckets) add(key string, quantity int, totalCents int64) {
	i, ok := b.index[key]
	if !ok {
		i = len(b.entries)
		b.index[key] = i
		b.entries = append(b.entries, ReportEntry{Group: key})
	}
	b.entries[i].Quantity += quantity
	b.entries[i].TotalCents += totalCents
}

// Aggregate reduces joined sales rows into grouped totals under the given
// mode, plus grand totals accumulated over all rows. The grand totals do
// not depend on the grouping mode. A purchase with a missing total counts
// as zero cents.
func Aggregate(rows []SalesRow, mode GroupMode) (buckets *Buckets, totalCents int64, totalItems int) {
	buckets = &Buckets{index: make(map[string]int)}

	for _, row := range rows {
		cents := row.Purchase.GetTotalCents()
		buckets.add(GroupKey(row, mode), row.Purchase.Quantity, cents)
		totalCents += cents
		totalItems += row.Purchase.Quantity
	}

	return buckets, totalCents, totalItems
}

// Rank orders the grouped totals by descending monetary total. Entries with
// equal totals keep their bucket-creation order, so repeated runs over the
// same rows produce the same ordering. All groups are returned.
func Rank(buckets *Buckets) []ReportEntry {
	entries := make([]ReportEntry, buckets.Len())
	copy(entries, buckets.entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCents > entries[j].TotalCents
	})

	return entries
}
