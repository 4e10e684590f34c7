package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/emrebkr/vendcare/internal/model"
)

func TestGenerate_HeaderOnly(t *testing.T) {
	content, err := NewCSVGenerator().Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := `"ID","Title","Location","Machine Serial No","User","Date","Status","Report Type","Notes"` + "\n"
	if string(content) != want {
		t.Errorf("got %q, want %q", content, want)
	}
}

func TestGenerate_QuotesEveryField(t *testing.T) {
	reports := []model.Report{{
		ID:                  "r1",
		Title:               "Ankara-2403290001-20240301100000",
		Location:            "Ankara",
		MachineSerialNumber: "2403290001",
		UserName:            "Ayse",
		CreatedAt:           time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:              model.ReportStatusCompleted,
		ReportType:          model.ReportTypeFridge,
		Notes:               "all good",
	}}

	content, err := NewCSVGenerator().Generate(reports)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	want := `"r1","Ankara-2403290001-20240301100000","Ankara","2403290001","Ayse","2024-03-01 10:00:00","completed","fridge","all good"`
	if lines[1] != want {
		t.Errorf("row mismatch:\n got %s\nwant %s", lines[1], want)
	}
}

func TestGenerate_EscapesEmbeddedQuotes(t *testing.T) {
	reports := []model.Report{{
		ID:    "r1",
		Notes: `door labeled "A" is stuck`,
	}}

	content, err := NewCSVGenerator().Generate(reports)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(content), `"door labeled ""A"" is stuck"`) {
		t.Errorf("embedded quotes not doubled: %s", content)
	}

	// The output must stay machine-parseable.
	rows, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		t.Fatalf("round-trip parse: %v", err)
	}
	if rows[1][8] != `door labeled "A" is stuck` {
		t.Errorf("round-trip changed the field: %q", rows[1][8])
	}
}

func TestGenerate_MissingTypeExportsAsIceCream(t *testing.T) {
	content, err := NewCSVGenerator().Generate([]model.Report{{ID: "r1"}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(content), `"iceCream"`) {
		t.Errorf("legacy records must export as iceCream: %s", content)
	}
}

func TestGenerate_ZeroDateIsEmpty(t *testing.T) {
	content, err := NewCSVGenerator().Generate([]model.Report{{ID: "r1"}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[1][5] != "" {
		t.Errorf("zero date should serialize empty, got %q", rows[1][5])
	}
}
