package app

import "fmt"

func (u *uiState) onFilter(text string) {
	u.state.SetFilter(text)
	u.refreshQueryList()
}

func (u *uiState) onSort(label string) {
	for _, c := range sortChoices {
		if c.Label == label {
			u.state.SetSortOrder(c.Value)
			break
		}
	}
	u.refreshQueryList()
}

// refreshQueryList recomputes the visible subset and redraws the list.
// Changing the filter or order drops the list highlight; the detail pane
// keeps showing the previously selected query.
func (u *uiState) refreshQueryList() {
	u.visible = u.state.Visible()
	u.list.UnselectAll()
	u.list.Refresh()
	if len(u.visible) == 0 {
		u.listEmpty.Show()
	} else {
		u.listEmpty.Hide()
	}
	u.setStatus(fmt.Sprintf("%d of %d queries", len(u.visible), len(u.state.Summaries())))
}
