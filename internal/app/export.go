package app

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"searchlens/analyzer/evaldata"
	"searchlens/analyzer/report"
)

// onExportCSV writes the currently visible summaries, in their displayed
// order, as CSV.
func (u *uiState) onExportCSV() {
	visible := u.state.Visible()
	if len(visible) == 0 {
		dialog.ShowInformation("Export", "No queries to export", u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		w := csv.NewWriter(uc)
		_ = w.Write([]string{"query", "relevance_rate", "avg_confidence", "relevant_count", "total_results", "tier"})
		for _, s := range visible {
			_ = w.Write([]string{
				s.Query,
				strconv.FormatFloat(s.RelevanceRate, 'f', 4, 64),
				strconv.FormatFloat(s.AvgConfidence, 'f', 4, 64),
				strconv.Itoa(s.RelevantCount),
				strconv.Itoa(s.TotalResults),
				string(evaldata.TierFor(s.RelevanceRate)),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		u.setStatus(fmt.Sprintf("Exported %d queries", len(visible)))
	}, u.w)
	fd.SetFileName("query_summaries.csv")
	fd.Show()
}

// onExportReport writes the HTML report for the visible subset.
func (u *uiState) onExportReport() {
	visible := u.state.Visible()
	if len(visible) == 0 {
		dialog.ShowInformation("Export", "No queries to export", u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		page := report.Build(u.state.dataset, visible)
		if err := report.Write(uc, page); err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		u.setStatus(fmt.Sprintf("Report exported (%d queries)", len(visible)))
	}, u.w)
	fd.SetFileName("relevance_report.html")
	fd.Show()
}
