package evaldata

// Tier labels a relevance rate for display, in both the query list and the
// detail header.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierModerate  Tier = "Moderate"
	TierPoor      Tier = "Poor"
)

// TierFor maps a relevance rate onto its display tier.
func TierFor(rate float64) Tier {
	switch {
	case rate >= 0.9:
		return TierExcellent
	case rate >= 0.7:
		return TierGood
	case rate >= 0.5:
		return TierModerate
	default:
		return TierPoor
	}
}

// Overview aggregates the whole summary list for the stats panel. The four
// bucket counts partition the queries by relevance rate.
type Overview struct {
	TotalQueries  int
	AvgRelevance  float64
	TotalRelevant int
	TotalResults  int

	PerfectQueries  int // rate == 1.0
	GoodQueries     int // 0.8 <= rate < 1.0
	ModerateQueries int // 0.5 <= rate < 0.8
	PoorQueries     int // rate < 0.5
}

// HasQueries reports whether the overview covers a non-empty dataset.
// AvgRelevance is zero, not NaN, when it does not.
func (o Overview) HasQueries() bool { return o.TotalQueries > 0 }

// ComputeOverview is a pure function of the summary list.
func ComputeOverview(summaries []QuerySummary) Overview {
	o := Overview{TotalQueries: len(summaries)}
	var rateSum float64
	for _, s := range summaries {
		rateSum += s.RelevanceRate
		o.TotalRelevant += s.RelevantCount
		o.TotalResults += s.TotalResults

		switch {
		case s.RelevanceRate == 1.0:
			o.PerfectQueries++
		case s.RelevanceRate >= 0.8:
			o.GoodQueries++
		case s.RelevanceRate >= 0.5:
			o.ModerateQueries++
		default:
			o.PoorQueries++
		}
	}
	if o.TotalQueries > 0 {
		o.AvgRelevance = rateSum / float64(o.TotalQueries)
	}
	return o
}
