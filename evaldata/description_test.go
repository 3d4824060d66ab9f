package evaldata

import (
	"errors"
	"testing"
)

func TestParseDescriptionPlainWins(t *testing.T) {
	r := Result{
		EmbedDescription: "full plain description",
		DescCompressed:   `{"name":"x"}`,
	}
	d, err := ParseDescription(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != DescriptionPlain || d.Text != "full plain description" {
		t.Errorf("expected plain description, got %+v", d)
	}
}

func TestParseDescriptionStructured(t *testing.T) {
	r := Result{DescCompressed: `{"name":"Trail Runner","class":"shoe","price":"$89","brand":"Acme","description":"Grippy sole."}`}
	d, err := ParseDescription(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != DescriptionStructured {
		t.Fatalf("expected structured description, got kind %d", d.Kind)
	}
	if d.Details.Name != "Trail Runner" || d.Details.Brand != "Acme" || d.Details.Price != "$89" {
		t.Errorf("details not decoded: %+v", d.Details)
	}
}

func TestParseDescriptionMalformed(t *testing.T) {
	r := Result{ProductName: "P", DescCompressed: `{"name": broken`}
	_, err := ParseDescription(r)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *DescriptionParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *DescriptionParseError, got %T", err)
	}
	if pe.Product != "P" {
		t.Errorf("error should name the product, got %q", pe.Product)
	}
}

func TestParseDescriptionAbsent(t *testing.T) {
	d, err := ParseDescription(Result{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != DescriptionNone {
		t.Errorf("expected no description, got kind %d", d.Kind)
	}
}

func TestResolveImageURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", PlaceholderImageURL},
		{"   ", PlaceholderImageURL},
		{"http://img.example.com/a.jpg", "https://img.example.com/a.jpg"},
		{"https://img.example.com/a.jpg", "https://img.example.com/a.jpg"},
	}
	for _, c := range cases {
		if got := ResolveImageURL(c.in); got != c.want {
			t.Errorf("ResolveImageURL(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
