package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"searchlens/analyzer/evaldata"
)

const appTitle = "Search Relevance Analyzer"

var sortChoices = []struct {
	Label string
	Value evaldata.SortOrder
}{
	{Label: "Worst First", Value: evaldata.SortWorst},
	{Label: "Best First", Value: evaldata.SortBest},
	{Label: "Alphabetical", Value: evaldata.SortAlphabetical},
}

type uiState struct {
	cfg   Config
	state *State

	w          fyne.Window
	content    fyne.CanvasObject
	search     *widget.Entry
	sortSelect *widget.Select
	list       *widget.List
	listEmpty  *widget.Label
	visible    []evaldata.QuerySummary
	detail     *fyne.Container
	status     *widget.Label
	statusBind binding.String

	exportCSVBtn    *widget.Button
	exportReportBtn *widget.Button
}

func buildUI(w fyne.Window, state *State, cfg Config) *uiState {
	u := &uiState{cfg: cfg, state: state, w: w}

	u.statusBind = binding.NewString()
	u.status = widget.NewLabelWithData(u.statusBind)

	u.search = widget.NewEntry()
	u.search.SetPlaceHolder("Search queries...")
	u.search.OnChanged = func(text string) { u.onFilter(text) }

	labels := make([]string, len(sortChoices))
	active := ""
	for i, c := range sortChoices {
		labels[i] = c.Label
		if c.Value == state.SortOrder() {
			active = c.Label
		}
	}
	u.sortSelect = widget.NewSelect(labels, nil)
	u.sortSelect.SetSelected(active)

	u.list = widget.NewList(
		func() int { return len(u.visible) },
		func() fyne.CanvasObject {
			query := widget.NewLabel("")
			query.TextStyle = fyne.TextStyle{Bold: true}
			query.Truncation = fyne.TextTruncateEllipsis
			counts := widget.NewLabel("")
			badge := widget.NewLabel("")
			return container.NewVBox(query, container.NewHBox(counts, layout.NewSpacer(), badge))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(u.visible) {
				return
			}
			s := u.visible[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(s.Query)
			row := box.Objects[1].(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(formatFraction(s.RelevantCount, s.TotalResults))
			badge := row.Objects[2].(*widget.Label)
			badge.SetText(fmt.Sprintf("%s %s", formatPercent0(s.RelevanceRate), evaldata.TierFor(s.RelevanceRate)))
		},
	)
	u.list.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(u.visible) {
			return
		}
		u.showQuery(u.visible[id].Query)
	}

	u.listEmpty = widget.NewLabel("No queries found")
	u.listEmpty.Alignment = fyne.TextAlignCenter
	u.listEmpty.Hide()

	u.exportCSVBtn = widget.NewButtonWithIcon("Export CSV", theme.DocumentSaveIcon(), func() { u.onExportCSV() })
	u.exportReportBtn = widget.NewButtonWithIcon("Export Report", theme.DocumentSaveIcon(), func() { u.onExportReport() })

	// Wired after the list exists: SetSelected above must not trigger a
	// refresh against widgets that are not built yet.
	u.sortSelect.OnChanged = func(label string) { u.onSort(label) }

	u.detail = container.NewStack(detailMessage("Select a query to see its results"))

	stats := buildStatsPanel(evaldata.ComputeOverview(state.Summaries()))
	left := container.NewBorder(
		container.NewVBox(u.search, u.sortSelect),
		container.NewVBox(
			widget.NewSeparator(),
			stats,
			container.NewGridWithColumns(2, u.exportCSVBtn, u.exportReportBtn),
		),
		nil, nil,
		container.NewStack(u.list, container.NewCenter(u.listEmpty)),
	)

	split := container.NewHSplit(left, u.detail)
	split.Offset = 0.32
	u.content = container.NewBorder(nil, u.status, nil, nil, split)

	u.refreshQueryList()
	return u
}

func (u *uiState) setStatus(text string) {
	_ = u.statusBind.Set(text)
}

func (u *uiState) setDetail(obj fyne.CanvasObject) {
	u.detail.Objects = []fyne.CanvasObject{obj}
	u.detail.Refresh()
}
