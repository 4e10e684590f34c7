package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/emrebkr/vendcare/internal/model"
	"github.com/emrebkr/vendcare/internal/photo"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	// Stored report text is ASCII-normalized at creation, so the built-in
	// core font is sufficient.
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a single maintenance report as a printable document.
func (g *Generator) Generate(report model.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Maintenance Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, report.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.fieldRow(pdf, "Location", report.Location)
	g.fieldRow(pdf, "Machine Serial No", report.MachineSerialNumber)
	g.fieldRow(pdf, "Submitted by", report.UserName)
	g.fieldRow(pdf, "Date", formatDateTime(report.CreatedAt))
	g.fieldRow(pdf, "Status", string(report.Status))
	g.fieldRow(pdf, "Report Type", string(report.EffectiveType()))
	pdf.Ln(2)

	if len(report.EquipmentChecklist) > 0 {
		g.checklistBlock(pdf, "Equipment Checklist", report.EquipmentChecklist)
	}
	if len(report.CleaningChecklist) > 0 {
		g.checklistBlock(pdf, "Cleaning Checklist", report.CleaningChecklist)
	}

	if report.EffectiveType() == model.ReportTypeFridge && len(report.Slots) > 0 {
		g.slotBlock(pdf, report)
	}

	if report.Issue != nil && report.Issue.HasIssue {
		g.issueBlock(pdf, *report.Issue)
	}

	if strings.TrimSpace(report.Notes) != "" {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, report.Notes, "", "L", false)
		pdf.Ln(2)
	}

	g.photoBlock(pdf, "Before Photos", report.BeforePhotos, "before")
	g.photoBlock(pdf, "After Photos", report.AfterPhotos, "after")
	g.photoBlock(pdf, "Issue Photos", report.IssuePhotos, "issue")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) fieldRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, safeValue(value), "", 1, "L", false, 0, "")
}

func (g *Generator) checklistBlock(pdf *gofpdf.Fpdf, title string, items []model.ChecklistItem) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s (%d/%d)", title, model.CompletedCount(items), len(items)), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	for _, item := range items {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("%s %s", mark, item.Text), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func (g *Generator) slotBlock(pdf *gofpdf.Fpdf, report model.Report) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Slots (%d filled, total quantity %.0f)", report.FilledSlotCount(), report.TotalSlotQuantity()), "", 1, "L", false, 0, "")

	headers := []string{"Slot", "Commodity", "Qty", "Expiry", "Batch"}
	colWidths := []float64{15, 75, 20, 35, 35}
	g.tableRow(pdf, headers, colWidths, true)
	for _, slot := range report.Slots {
		row := []string{
			fmt.Sprintf("%d", slot.ID),
			slot.Commodity,
			slot.Quantity,
			slot.ExpiryDate,
			slot.BatchNumber,
		}
		g.tableRow(pdf, row, colWidths, false)
	}
	pdf.Ln(2)
}

func (g *Generator) issueBlock(pdf *gofpdf.Fpdf, issue model.IssueInfo) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Issue", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, safeValue(issue.Description), "", "L", false)

	status := "open"
	if issue.Resolved {
		status = "resolved"
		if issue.ResolvedDate != nil {
			status = fmt.Sprintf("resolved at %s", formatDateTime(*issue.ResolvedDate))
		}
	}
	if !issue.Resolved {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s", status), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

// photoBlock embeds stored photos at a fixed width. Records written before
// inline compression existed may hold values that are not JPEG data URIs;
// those are skipped rather than failing the whole document.
func (g *Generator) photoBlock(pdf *gofpdf.Fpdf, title string, photos []string, prefix string) {
	embeddable := make([][]byte, 0, len(photos))
	for _, uri := range photos {
		raw, err := photo.Raw(uri)
		if err != nil {
			continue
		}
		embeddable = append(embeddable, raw)
	}
	if len(embeddable) == 0 {
		return
	}

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	for i, raw := range embeddable {
		name := fmt.Sprintf("%s-%d", prefix, i)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
		pdf.ImageOptions(name, 15, pdf.GetY(), 80, 0, true, opts, 0, "")
		pdf.Ln(2)
	}
	pdf.Ln(2)
}

func (g *Generator) tableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == 0 || i == 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}
