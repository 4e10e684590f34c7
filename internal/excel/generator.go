package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/emrebkr/vendcare/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a workbook with a summary sheet and one row per report.
// It receives the already-filtered list; pagination never applies to exports.
func (g *Generator) Generate(reports []model.Report) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, reports); err != nil {
		return nil, err
	}

	reportsSheet := "Reports"
	if _, err := file.NewSheet(reportsSheet); err != nil {
		return nil, err
	}
	if err := g.writeReports(file, reportsSheet, reports); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, reports []model.Report) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	iceCream := 0
	fridge := 0
	issues := 0
	for _, report := range reports {
		switch report.EffectiveType() {
		case model.ReportTypeFridge:
			fridge++
		default:
			iceCream++
		}
		if report.Issue != nil && report.Issue.HasIssue && !report.Issue.Resolved {
			issues++
		}
	}

	set("A1", "Exported at")
	set("B1", time.Now().UTC().Format("2006-01-02 15:04:05"))
	set("A2", "Total reports")
	set("B2", len(reports))
	set("A3", "Ice cream cleaning")
	set("B3", iceCream)
	set("A4", "Fridge filling")
	set("B4", fridge)
	set("A5", "Open issues")
	set("B5", issues)

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 22)
	return nil
}

func (g *Generator) writeReports(file *excelize.File, sheet string, reports []model.Report) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID", "Title", "Location", "Machine Serial No", "User", "Date",
		"Status", "Report Type", "Equipment Done", "Cleaning Done",
		"Filled Slots", "Notes",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, report := range reports {
		row := i + 2
		set(fmt.Sprintf("A%d", row), report.ID)
		set(fmt.Sprintf("B%d", row), report.Title)
		set(fmt.Sprintf("C%d", row), report.Location)
		set(fmt.Sprintf("D%d", row), report.MachineSerialNumber)
		set(fmt.Sprintf("E%d", row), report.UserName)
		set(fmt.Sprintf("F%d", row), formatDateTime(report.CreatedAt))
		set(fmt.Sprintf("G%d", row), string(report.Status))
		set(fmt.Sprintf("H%d", row), string(report.EffectiveType()))
		set(fmt.Sprintf("I%d", row), checklistProgress(report.EquipmentChecklist))
		set(fmt.Sprintf("J%d", row), checklistProgress(report.CleaningChecklist))
		set(fmt.Sprintf("K%d", row), report.FilledSlotCount())
		set(fmt.Sprintf("L%d", row), report.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "B", 30)
	_ = file.SetColWidth(sheet, "C", "E", 24)
	_ = file.SetColWidth(sheet, "F", "H", 18)
	_ = file.SetColWidth(sheet, "I", "K", 14)
	_ = file.SetColWidth(sheet, "L", "L", 40)
	return nil
}

func checklistProgress(items []model.ChecklistItem) string {
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", model.CompletedCount(items), len(items))
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
