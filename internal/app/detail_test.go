package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"searchlens/analyzer/evaldata"
)

func TestDetailsToggle(t *testing.T) {
	test.NewApp()

	desc := widget.NewLabel("panel content")
	toggle := newDetailsToggle(desc)

	if desc.Visible() {
		t.Fatal("description should start collapsed")
	}
	if toggle.Text != showDetailsLabel {
		t.Fatalf("expected %q, got %q", showDetailsLabel, toggle.Text)
	}

	test.Tap(toggle)
	if !desc.Visible() {
		t.Error("description should be visible after one tap")
	}
	if toggle.Text != hideDetailsLabel {
		t.Errorf("expected %q after expanding, got %q", hideDetailsLabel, toggle.Text)
	}

	test.Tap(toggle)
	if desc.Visible() {
		t.Error("description should collapse again")
	}
	if toggle.Text != showDetailsLabel {
		t.Errorf("expected %q after collapsing, got %q", showDetailsLabel, toggle.Text)
	}
}

func TestTogglesAreIndependent(t *testing.T) {
	test.NewApp()

	descA := widget.NewLabel("a")
	descB := widget.NewLabel("b")
	toggleA := newDetailsToggle(descA)
	_ = newDetailsToggle(descB)

	test.Tap(toggleA)
	if !descA.Visible() {
		t.Error("tapped panel should open")
	}
	if descB.Visible() {
		t.Error("sibling panel must stay collapsed")
	}
}

func TestBuildDescriptionVariants(t *testing.T) {
	test.NewApp()

	plain := buildDescription(evaldata.Result{EmbedDescription: "plain text"})
	if lbl, ok := plain.(*widget.Label); !ok || lbl.Text != "plain text" {
		t.Errorf("expected plain label, got %T", plain)
	}

	structured := buildDescription(evaldata.Result{DescCompressed: `{"name":"n","class":"c","price":"p","brand":"b","description":"d"}`})
	if _, ok := structured.(*widget.Form); !ok {
		t.Errorf("expected form for structured description, got %T", structured)
	}

	broken := buildDescription(evaldata.Result{DescCompressed: `{broken`})
	if lbl, ok := broken.(*widget.Label); !ok || lbl.Text != "Error loading product details" {
		t.Errorf("expected parse-failure placeholder, got %T", broken)
	}

	none := buildDescription(evaldata.Result{})
	if lbl, ok := none.(*widget.Label); !ok || lbl.Text != "No detailed description available" {
		t.Errorf("expected absent-description placeholder, got %T", none)
	}
}
