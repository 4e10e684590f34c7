package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/emrebkr/vendcare/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type reportRow struct {
	ID                  string
	Title               string
	ReportType          string
	Status              string
	Location            string
	MachineSerialNumber string
	Notes               string
	UserID              string
	UserName            string
	EquipmentChecklist  []byte
	CleaningChecklist   []byte
	FillingDetails      []byte
	CupStock            string
	WasteNote           string
	StockInfo           string
	Issue               []byte
	Waste               []byte
	Slots               []byte
	BeforePhotos        []byte
	AfterPhotos         []byte
	IssuePhotos         []byte
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

const reportColumns = `
	id, title, report_type, status, location, machine_serial_number, notes,
	user_id, user_name, equipment_checklist, cleaning_checklist,
	filling_details, cup_stock, waste_note, stock_info, issue, waste, slots,
	before_photos, after_photos, issue_photos, created_at, updated_at
`

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	row, err := toReportRow(report)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO reports (`+reportColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		row.ID, row.Title, row.ReportType, row.Status, row.Location,
		row.MachineSerialNumber, row.Notes, row.UserID, row.UserName,
		row.EquipmentChecklist, row.CleaningChecklist, row.FillingDetails,
		row.CupStock, row.WasteNote, row.StockInfo, row.Issue, row.Waste,
		row.Slots, row.BeforePhotos, row.AfterPhotos, row.IssuePhotos,
		row.CreatedAt, row.UpdatedAt,
	).Error
}

func (r *ReportRepository) List(ctx context.Context) ([]model.Report, error) {
	var rows []reportRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+reportColumns+`
		FROM reports
		ORDER BY created_at DESC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return fromReportRows(rows)
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID string) ([]model.Report, error) {
	var rows []reportRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+reportColumns+`
		FROM reports
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return fromReportRows(rows)
}

func (r *ReportRepository) Get(ctx context.Context, id string) (*model.Report, error) {
	var row reportRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	report, err := fromReportRow(row)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateIssue persists the only two fields an admin may change after
// creation, plus the updated_at stamp.
func (r *ReportRepository) UpdateIssue(ctx context.Context, id string, issue *model.IssueInfo, updatedAt time.Time) error {
	payload, err := json.Marshal(issue)
	if err != nil {
		return fmt.Errorf("marshal issue: %w", err)
	}
	result := r.db.WithContext(ctx).Exec(`
		UPDATE reports
		SET issue = ?, updated_at = ?
		WHERE id = ?
	`, payload, updatedAt, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM reports WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toReportRow(report *model.Report) (*reportRow, error) {
	row := &reportRow{
		ID:                  report.ID,
		Title:               report.Title,
		ReportType:          string(report.ReportType),
		Status:              string(report.Status),
		Location:            report.Location,
		MachineSerialNumber: report.MachineSerialNumber,
		Notes:               report.Notes,
		UserID:              report.UserID,
		UserName:            report.UserName,
		CupStock:            report.CupStock,
		WasteNote:           report.WasteNote,
		StockInfo:           report.StockInfo,
		CreatedAt:           report.CreatedAt,
		UpdatedAt:           report.UpdatedAt,
	}

	fields := []struct {
		name  string
		value interface{}
		out   *[]byte
	}{
		{"equipment_checklist", report.EquipmentChecklist, &row.EquipmentChecklist},
		{"cleaning_checklist", report.CleaningChecklist, &row.CleaningChecklist},
		{"filling_details", report.FillingDetails, &row.FillingDetails},
		{"issue", report.Issue, &row.Issue},
		{"waste", report.Waste, &row.Waste},
		{"slots", report.Slots, &row.Slots},
		{"before_photos", orEmpty(report.BeforePhotos), &row.BeforePhotos},
		{"after_photos", orEmpty(report.AfterPhotos), &row.AfterPhotos},
		{"issue_photos", orEmpty(report.IssuePhotos), &row.IssuePhotos},
	}
	for _, field := range fields {
		payload, err := json.Marshal(field.value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", field.name, err)
		}
		*field.out = payload
	}
	return row, nil
}

func fromReportRows(rows []reportRow) ([]model.Report, error) {
	reports := make([]model.Report, 0, len(rows))
	for _, row := range rows {
		report, err := fromReportRow(row)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func fromReportRow(row reportRow) (model.Report, error) {
	report := model.Report{
		ID:                  row.ID,
		Title:               row.Title,
		ReportType:          model.ReportType(row.ReportType),
		Status:              model.ReportStatus(row.Status),
		Location:            row.Location,
		MachineSerialNumber: row.MachineSerialNumber,
		Notes:               row.Notes,
		UserID:              row.UserID,
		UserName:            row.UserName,
		CupStock:            row.CupStock,
		WasteNote:           row.WasteNote,
		StockInfo:           row.StockInfo,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}

	fields := []struct {
		name string
		raw  []byte
		out  interface{}
	}{
		{"equipment_checklist", row.EquipmentChecklist, &report.EquipmentChecklist},
		{"cleaning_checklist", row.CleaningChecklist, &report.CleaningChecklist},
		{"filling_details", row.FillingDetails, &report.FillingDetails},
		{"issue", row.Issue, &report.Issue},
		{"waste", row.Waste, &report.Waste},
		{"slots", row.Slots, &report.Slots},
		{"before_photos", row.BeforePhotos, &report.BeforePhotos},
		{"after_photos", row.AfterPhotos, &report.AfterPhotos},
		{"issue_photos", row.IssuePhotos, &report.IssuePhotos},
	}
	for _, field := range fields {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.out); err != nil {
			return model.Report{}, fmt.Errorf("unmarshal %s for report %s: %w", field.name, row.ID, err)
		}
	}
	return report, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
