package app

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"searchlens/analyzer/evaldata"
)

const (
	showDetailsLabel = "Show Details"
	hideDetailsLabel = "Hide Details"
)

// showQuery swaps in a loading placeholder, then commits the detail view
// after the configured delay. The generation token from Select makes stale
// timers no-ops: if the user picks another query before the timer fires,
// only the newest selection renders.
func (u *uiState) showQuery(query string) {
	seq := u.state.Select(query)
	u.setDetail(loadingDetail(query))

	time.AfterFunc(u.cfg.DetailDelay(), func() {
		fyne.Do(func() {
			u.commitDetail(query, seq)
		})
	})
}

func (u *uiState) commitDetail(query string, seq uint64) {
	if !u.state.IsCurrent(seq) {
		return
	}
	qd, err := u.state.Lookup(query)
	if err != nil {
		if errors.Is(err, evaldata.ErrQueryNotFound) {
			u.setDetail(detailMessage("Query not found"))
		} else {
			u.setDetail(detailMessage(err.Error()))
		}
		return
	}
	u.setDetail(container.NewVScroll(u.buildDetail(qd, seq)))
}

func (u *uiState) buildDetail(qd *evaldata.QueryData, seq uint64) fyne.CanvasObject {
	tier := evaldata.TierFor(qd.RelevanceRate)
	badge := canvas.NewText(string(tier), tierColor(tier))
	badge.TextStyle = fyne.TextStyle{Bold: true}

	title := widget.NewLabelWithStyle(qd.Query, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, container.NewCenter(badge), title),
		container.NewGridWithColumns(4,
			statItem(formatPercent1(qd.RelevanceRate), "Relevance Rate"),
			statItem(fmt.Sprintf("%d", qd.RelevantCount), "Relevant Results"),
			statItem(fmt.Sprintf("%d", qd.TotalResults), "Total Results"),
			statItem(formatPercent1(qd.AvgConfidence), "Avg Confidence"),
		),
		widget.NewSeparator(),
	)

	sorted := evaldata.ResultsByScore(qd.Results)
	heading := widget.NewLabelWithStyle(
		fmt.Sprintf("Product Results (%d)", len(sorted)),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	note := dimLabel("Sorted by search score (highest first)")

	cards := container.NewVBox(header, heading, note)
	for _, r := range sorted {
		cards.Add(u.buildResultCard(r, seq))
	}
	return cards
}

func (u *uiState) buildResultCard(r evaldata.Result, seq uint64) fyne.CanvasObject {
	img := canvas.NewImageFromResource(theme.FileImageIcon())
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(140, 100))
	u.loadCardImage(img, evaldata.ResolveImageURL(r.ImageURL), seq)

	name := widget.NewLabelWithStyle(r.ProductName, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Wrapping = fyne.TextWrapWord
	class := dimLabel(r.ProductClass)

	indicator := canvas.NewText("Not Relevant", tierColor(evaldata.TierPoor))
	if r.IsRelevant {
		indicator = canvas.NewText("Relevant", tierColor(evaldata.TierExcellent))
	}
	indicator.TextStyle = fyne.TextStyle{Bold: true}
	scoreRow := container.NewHBox(
		widget.NewLabel("Score: "+formatScore(r.Score)),
		layout.NewSpacer(),
		container.NewCenter(indicator),
	)
	meta := dimLabel(fmt.Sprintf("Position: %d | Confidence: %s", r.Position, formatPercent0(r.Confidence)))

	desc := buildDescription(r)
	toggle := newDetailsToggle(desc)

	info := container.NewVBox(
		name,
		class,
		scoreRow,
		meta,
		container.NewHBox(toggle, layout.NewSpacer()),
		desc,
	)
	card := container.NewBorder(nil, nil, img, nil, info)
	return container.NewVBox(card, widget.NewSeparator())
}

// newDetailsToggle hides the description panel and returns the button that
// flips it. Each card owns its own toggle, so panels expand independently.
func newDetailsToggle(desc fyne.CanvasObject) *widget.Button {
	desc.Hide()
	var toggle *widget.Button
	toggle = widget.NewButton(showDetailsLabel, func() {
		if desc.Visible() {
			desc.Hide()
			toggle.SetText(showDetailsLabel)
		} else {
			desc.Show()
			toggle.SetText(hideDetailsLabel)
		}
	})
	return toggle
}

// buildDescription renders the collapsed panel content for one card:
// plain text first, then the structured details, then a placeholder. A
// malformed compressed description degrades to an error note for that card
// alone.
func buildDescription(r evaldata.Result) fyne.CanvasObject {
	desc, err := evaldata.ParseDescription(r)
	if err != nil {
		return dimLabel("Error loading product details")
	}
	switch {
	case desc.IsPlain():
		l := widget.NewLabel(desc.Text)
		l.Wrapping = fyne.TextWrapWord
		return l
	case desc.IsStructured():
		d := desc.Details
		full := widget.NewLabel(d.Description)
		full.Wrapping = fyne.TextWrapWord
		return widget.NewForm(
			widget.NewFormItem("Name", widget.NewLabel(d.Name)),
			widget.NewFormItem("Class", widget.NewLabel(d.Class)),
			widget.NewFormItem("Price", widget.NewLabel(d.Price)),
			widget.NewFormItem("Brand", widget.NewLabel(d.Brand)),
			widget.NewFormItem("Description", full),
		)
	default:
		return dimLabel("No detailed description available")
	}
}

// loadCardImage fetches the card image off the UI thread and commits it
// only while the owning detail view is still the current one. A failed
// fetch falls back to the configured placeholder image.
func (u *uiState) loadCardImage(img *canvas.Image, url string, seq uint64) {
	placeholder := u.cfg.Placeholder
	go func() {
		res, err := fyne.LoadResourceFromURLString(url)
		if err != nil && url != placeholder {
			res, err = fyne.LoadResourceFromURLString(placeholder)
		}
		if err != nil {
			return
		}
		fyne.Do(func() {
			if !u.state.IsCurrent(seq) {
				return
			}
			img.Resource = res
			img.Refresh()
		})
	}()
}

func loadingDetail(query string) fyne.CanvasObject {
	msg := widget.NewLabel(fmt.Sprintf("Loading results for %q...", query))
	msg.Alignment = fyne.TextAlignCenter
	return container.NewCenter(container.NewVBox(widget.NewProgressBarInfinite(), msg))
}

func detailMessage(text string) fyne.CanvasObject {
	return container.NewCenter(dimLabel(text))
}

func dimLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.LowImportance
	l.Wrapping = fyne.TextWrapWord
	return l
}
