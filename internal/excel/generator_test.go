package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/emrebkr/vendcare/internal/model"
)

func TestGenerate(t *testing.T) {
	reports := []model.Report{
		{
			ID:                  "r1",
			Title:               "Ankara-2403290001-20240301100000",
			Location:            "Ankara",
			MachineSerialNumber: "2403290001",
			UserName:            "Ayse",
			Status:              model.ReportStatusCompleted,
			CreatedAt:           time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			EquipmentChecklist: []model.ChecklistItem{
				{ID: 1, Text: "a", Completed: true},
				{ID: 2, Text: "b"},
			},
		},
		{
			ID:         "r2",
			ReportType: model.ReportTypeFridge,
			Slots:      []model.Slot{{ID: 1, Commodity: "cola", Quantity: "4"}},
			Issue:      &model.IssueInfo{HasIssue: true},
		},
	}

	content, err := NewGenerator().Generate(reports)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	total, err := file.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if total != "2" {
		t.Errorf("expected total 2, got %q", total)
	}
	fridge, _ := file.GetCellValue("Summary", "B4")
	if fridge != "1" {
		t.Errorf("expected 1 fridge report, got %q", fridge)
	}
	openIssues, _ := file.GetCellValue("Summary", "B5")
	if openIssues != "1" {
		t.Errorf("expected 1 open issue, got %q", openIssues)
	}

	progress, _ := file.GetCellValue("Reports", "I2")
	if progress != "1/2" {
		t.Errorf("expected checklist progress 1/2, got %q", progress)
	}
	slots, _ := file.GetCellValue("Reports", "K3")
	if slots != "1" {
		t.Errorf("expected 1 filled slot, got %q", slots)
	}
}

func TestGenerate_Empty(t *testing.T) {
	content, err := NewGenerator().Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(content) == 0 {
		t.Error("expected a workbook even with no reports")
	}
}
