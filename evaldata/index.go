package evaldata

// BuildSummaries flattens the dataset into one QuerySummary per query,
// following the dataset's document order. The nested result lists are
// dropped; callers go back to the Dataset for detail views.
func BuildSummaries(d *Dataset) []QuerySummary {
	if d == nil {
		return nil
	}
	out := make([]QuerySummary, 0, d.Len())
	for _, q := range d.order {
		out = append(out, d.queries[q].QuerySummary)
	}
	return out
}
