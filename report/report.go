// Package report renders a standalone HTML snapshot of the evaluation
// dataset: the overview figures plus a per-query breakdown of every result.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"searchlens/analyzer/evaldata"
)

// Page is everything the report template needs.
type Page struct {
	GeneratedAt time.Time
	Overview    evaldata.Overview
	Queries     []QuerySection
}

// QuerySection is one query's block in the report.
type QuerySection struct {
	Summary evaldata.QuerySummary
	Tier    evaldata.Tier
	Results []ResultRow
}

// ResultRow pairs a result with its decoded description. DescriptionFailed
// marks a desc_compressed payload that did not parse; the template shows the
// error placeholder for that row only.
type ResultRow struct {
	evaldata.Result
	Description       evaldata.Description
	DescriptionFailed bool
}

// Build assembles the report page for the given summaries, in the order they
// arrive (so a filtered or sorted view exports as seen). Results within each
// query are sorted descending by score, matching the detail view.
func Build(ds *evaldata.Dataset, summaries []evaldata.QuerySummary) Page {
	p := Page{
		GeneratedAt: time.Now(),
		Overview:    evaldata.ComputeOverview(summaries),
	}
	for _, s := range summaries {
		section := QuerySection{Summary: s, Tier: evaldata.TierFor(s.RelevanceRate)}
		if qd, ok := ds.Get(s.Query); ok {
			for _, r := range evaldata.ResultsByScore(qd.Results) {
				desc, err := evaldata.ParseDescription(r)
				section.Results = append(section.Results, ResultRow{
					Result:            r,
					Description:       desc,
					DescriptionFailed: err != nil,
				})
			}
		}
		p.Queries = append(p.Queries, section)
	}
	return p
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct0":      func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	"pct1":      func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
	"score":     func(v float64) string { return fmt.Sprintf("%.3f", v) },
	"tierClass": func(t evaldata.Tier) string { return "tier-" + strings.ToLower(string(t)) },
}).Parse(tmplReport))

// Write renders the page as HTML. All dataset text passes through
// html/template's contextual escaping, so markup embedded in queries or
// product fields renders as literal text.
func Write(w io.Writer, p Page) error {
	return reportTmpl.Execute(w, p)
}
