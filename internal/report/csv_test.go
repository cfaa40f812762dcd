package report

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestCSVRendererName(t *testing.T) {
	r := &CSVRenderer{}
	if got := r.Name(); got != "team_ages.csv" {
		t.Errorf("unexpected artifact name: %q", got)
	}
}

func TestCSVRenderer(t *testing.T) {
	rep := testReport(t)

	data, err := (&CSVRenderer{}).Render(rep)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("artifact is not valid CSV: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("expected header plus four teams, got %d records", len(records))
	}

	header := records[0]
	want := []string{"team", "weighted_age", "roster_age", "weighted_rank", "roster_rank", "players", "minutes"}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header column %d: expected %q, got %q", i, want[i], header[i])
		}
	}

	// Ascending by weighted age.
	first := records[1]
	if first[0] != "MIL" || first[1] != "22" || first[3] != "1" {
		t.Errorf("unexpected first team record: %v", first)
	}

	okc := records[2]
	if okc[0] != "OKC" || okc[1] != "23" || okc[5] != "2" {
		t.Errorf("unexpected OKC record: %v", okc)
	}

	// The team with no minutes exports empty weighted fields, never zeroes.
	last := records[4]
	if last[0] != "BOS" {
		t.Fatalf("expected BOS last, got %v", last)
	}
	if last[1] != "" || last[3] != "" {
		t.Errorf("expected empty weighted fields for BOS, got %v", last)
	}
	if last[2] != "27" {
		t.Errorf("expected roster age 27 for BOS, got %q", last[2])
	}
}
