// Package export renders the currently-filtered report list as CSV.
package export

import (
	"strings"
	"time"

	"github.com/emrebkr/vendcare/internal/model"
)

type CSVGenerator struct{}

func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

var csvHeaders = []string{
	"ID", "Title", "Location", "Machine Serial No", "User",
	"Date", "Status", "Report Type", "Notes",
}

// Generate writes every column for every record it is given. Each field is
// quoted, with embedded quotes doubled.
func (g *CSVGenerator) Generate(reports []model.Report) ([]byte, error) {
	var b strings.Builder

	writeRow(&b, csvHeaders)
	for _, report := range reports {
		writeRow(&b, []string{
			report.ID,
			report.Title,
			report.Location,
			report.MachineSerialNumber,
			report.UserName,
			formatDateTime(report.CreatedAt),
			string(report.Status),
			string(report.EffectiveType()),
			report.Notes,
		})
	}
	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
