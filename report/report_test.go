package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"searchlens/analyzer/evaldata"
)

func buildPage(t *testing.T, raw string) Page {
	t.Helper()
	var ds evaldata.Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatalf("unmarshal dataset: %v", err)
	}
	return Build(&ds, evaldata.BuildSummaries(&ds))
}

func render(t *testing.T, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return buf.String()
}

func TestReportEscapesDatasetText(t *testing.T) {
	p := buildPage(t, `{"<script>alert(1)</script>": {
		"relevance_rate": 0.5, "avg_confidence": 0.5, "relevant_count": 1, "total_results": 2,
		"results": [
			{"product_name": "<script>alert(2)</script>", "product_class": "c", "score": 0.5, "position": 1, "confidence": 0.5, "is_relevant": true}
		]
	}}`)
	html := render(t, p)

	if strings.Contains(html, "<script>alert(1)</script>") || strings.Contains(html, "<script>alert(2)</script>") {
		t.Error("dataset markup leaked into the report unescaped")
	}
	if !strings.Contains(html, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("expected the query text rendered as escaped literal")
	}
}

func TestReportSortsResultsByScore(t *testing.T) {
	p := buildPage(t, `{"shoes": {
		"relevance_rate": 0.6, "avg_confidence": 0.5, "relevant_count": 3, "total_results": 5,
		"results": [
			{"product_name": "LowScore", "score": 0.2, "position": 1, "confidence": 0.4, "is_relevant": false},
			{"product_name": "HighScore", "score": 0.9, "position": 2, "confidence": 0.8, "is_relevant": true}
		]
	}}`)

	if len(p.Queries) != 1 {
		t.Fatalf("expected one section, got %d", len(p.Queries))
	}
	rows := p.Queries[0].Results
	if rows[0].ProductName != "HighScore" || rows[1].ProductName != "LowScore" {
		t.Errorf("results not score-descending: %q then %q", rows[0].ProductName, rows[1].ProductName)
	}

	html := render(t, p)
	if strings.Index(html, "HighScore") > strings.Index(html, "LowScore") {
		t.Error("rendered order does not follow the score sort")
	}
}

func TestReportDescriptionFallbacks(t *testing.T) {
	p := buildPage(t, `{"q": {
		"relevance_rate": 1.0, "avg_confidence": 0.9, "relevant_count": 3, "total_results": 3,
		"results": [
			{"product_name": "plain", "score": 0.9, "position": 1, "confidence": 0.9, "is_relevant": true,
			 "product_embed_description": "a plain description"},
			{"product_name": "broken", "score": 0.8, "position": 2, "confidence": 0.9, "is_relevant": true,
			 "desc_compressed": "{not json"},
			{"product_name": "bare", "score": 0.7, "position": 3, "confidence": 0.9, "is_relevant": true}
		]
	}}`)
	html := render(t, p)

	if !strings.Contains(html, "a plain description") {
		t.Error("plain description missing")
	}
	if !strings.Contains(html, "Error loading product details") {
		t.Error("parse failure placeholder missing")
	}
	if !strings.Contains(html, "No detailed description available") {
		t.Error("absent description placeholder missing")
	}
}

func TestReportEmptyDatasetOverview(t *testing.T) {
	p := buildPage(t, `{}`)
	html := render(t, p)

	if strings.Contains(html, "NaN") {
		t.Error("empty dataset must not render NaN")
	}
	if !strings.Contains(html, "Total Queries") {
		t.Error("overview cards missing")
	}
}

func TestBuildTierPerSection(t *testing.T) {
	p := buildPage(t, `{"q": {"relevance_rate": 0.95, "avg_confidence": 0.9, "relevant_count": 19, "total_results": 20, "results": []}}`)
	if p.Queries[0].Tier != evaldata.TierExcellent {
		t.Errorf("expected Excellent tier, got %s", p.Queries[0].Tier)
	}
}
