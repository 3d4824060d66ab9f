package evaldata

import (
	"encoding/json"
	"errors"
	"testing"
)

const sampleJSON = `{
	"running shoes": {
		"relevance_rate": 0.6,
		"avg_confidence": 0.5,
		"relevant_count": 3,
		"total_results": 5,
		"results": [
			{"product_name": "A", "product_class": "shoe", "score": 0.2, "position": 1, "confidence": 0.4, "is_relevant": false},
			{"product_name": "B", "product_class": "shoe", "score": 0.9, "position": 2, "confidence": 0.8, "is_relevant": true}
		]
	},
	"blender": {
		"relevance_rate": 1.0,
		"avg_confidence": 0.9,
		"relevant_count": 4,
		"total_results": 4,
		"results": []
	},
	"aquarium": {
		"relevance_rate": 0.25,
		"avg_confidence": 0.3,
		"relevant_count": 1,
		"total_results": 4,
		"results": []
	}
}`

func mustDataset(t *testing.T, raw string) *Dataset {
	t.Helper()
	var ds Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatalf("unmarshal dataset: %v", err)
	}
	return &ds
}

func TestDatasetKeepsDocumentOrder(t *testing.T) {
	ds := mustDataset(t, sampleJSON)

	want := []string{"running shoes", "blender", "aquarium"}
	got := ds.Queries()
	if len(got) != len(want) {
		t.Fatalf("expected %d queries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("query %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDatasetGet(t *testing.T) {
	ds := mustDataset(t, sampleJSON)

	qd, ok := ds.Get("running shoes")
	if !ok {
		t.Fatal("expected running shoes to be present")
	}
	if qd.Query != "running shoes" {
		t.Errorf("expected query field to be set from key, got %q", qd.Query)
	}
	if len(qd.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(qd.Results))
	}
	if qd.Results[0].ProductName != "A" || qd.Results[1].ProductName != "B" {
		t.Errorf("result order not preserved: %q, %q", qd.Results[0].ProductName, qd.Results[1].ProductName)
	}

	if _, ok := ds.Get("no such query"); ok {
		t.Error("expected lookup miss for unknown query")
	}
}

func TestDatasetLookupMiss(t *testing.T) {
	ds := mustDataset(t, sampleJSON)
	_, err := ds.Lookup("no such query")
	if !errors.Is(err, ErrQueryNotFound) {
		t.Errorf("expected ErrQueryNotFound, got %v", err)
	}
}

func TestDatasetRejectsNonObject(t *testing.T) {
	var ds Dataset
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &ds); err == nil {
		t.Error("expected error for non-object dataset")
	}
}

func TestBuildSummaries(t *testing.T) {
	ds := mustDataset(t, sampleJSON)

	summaries := BuildSummaries(ds)
	if len(summaries) != ds.Len() {
		t.Fatalf("expected %d summaries, got %d", ds.Len(), len(summaries))
	}

	first := summaries[0]
	if first.Query != "running shoes" {
		t.Errorf("expected first summary to follow document order, got %q", first.Query)
	}
	if first.RelevanceRate != 0.6 || first.AvgConfidence != 0.5 || first.RelevantCount != 3 || first.TotalResults != 5 {
		t.Errorf("summary fields not copied verbatim: %+v", first)
	}
}

func TestBuildSummariesNilDataset(t *testing.T) {
	if got := BuildSummaries(nil); len(got) != 0 {
		t.Errorf("expected no summaries for nil dataset, got %d", len(got))
	}
}
