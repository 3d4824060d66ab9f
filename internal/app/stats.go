package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"searchlens/analyzer/evaldata"
)

// buildStatsPanel renders the aggregate overview. It is computed once at
// startup; the dataset never changes afterwards.
func buildStatsPanel(o evaldata.Overview) fyne.CanvasObject {
	avg := "-"
	if o.HasQueries() {
		avg = formatPercent1(o.AvgRelevance)
	}

	return container.NewVBox(
		widget.NewLabelWithStyle("Overview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		statRow("Total Queries", fmt.Sprintf("%d", o.TotalQueries)),
		statRow("Avg Relevance", avg),
		widget.NewSeparator(),
		statRow("Perfect (100%)", fmt.Sprintf("%d", o.PerfectQueries)),
		statRow("Good (80-99%)", fmt.Sprintf("%d", o.GoodQueries)),
		statRow("Moderate (50-79%)", fmt.Sprintf("%d", o.ModerateQueries)),
		statRow("Poor (<50%)", fmt.Sprintf("%d", o.PoorQueries)),
		widget.NewSeparator(),
		dimLabel(fmt.Sprintf("%d relevant out of %d total results", o.TotalRelevant, o.TotalResults)),
	)
}

func statRow(label, value string) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel(label),
		layout.NewSpacer(),
		widget.NewLabelWithStyle(value, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
	)
}

// statItem is the large-number tile used in the detail header.
func statItem(value, caption string) fyne.CanvasObject {
	v := widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	c := widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{})
	return container.NewVBox(v, c)
}
