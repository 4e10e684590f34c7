package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emrebkr/vendcare/internal/config"
	"github.com/emrebkr/vendcare/internal/listview"
	"github.com/emrebkr/vendcare/internal/model"
)

var serialNumberPattern = regexp.MustCompile(`^\d{10}$`)

type ReportStore interface {
	Create(ctx context.Context, report *model.Report) error
	List(ctx context.Context) ([]model.Report, error)
	ListByUser(ctx context.Context, userID string) ([]model.Report, error)
	Get(ctx context.Context, id string) (*model.Report, error)
	UpdateIssue(ctx context.Context, id string, issue *model.IssueInfo, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type ExcelGenerator interface {
	Generate(reports []model.Report) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.Report) ([]byte, error)
}

type CSVGenerator interface {
	Generate(reports []model.Report) ([]byte, error)
}

type ReportService struct {
	store ReportStore
	csv   CSVGenerator
	excel ExcelGenerator
	pdf   PDFGenerator
	cfg   *config.Config
}

func NewReportService(store ReportStore, csv CSVGenerator, excel ExcelGenerator, pdf PDFGenerator, cfg *config.Config) *ReportService {
	return &ReportService{
		store: store,
		csv:   csv,
		excel: excel,
		pdf:   pdf,
		cfg:   cfg,
	}
}

type CreateReportInput struct {
	ReportType          model.ReportType
	Status              model.ReportStatus
	Location            string
	MachineSerialNumber string
	Notes               string
	EquipmentChecklist  []model.ChecklistItem
	CleaningChecklist   []model.ChecklistItem
	FillingDetails      *model.FillingDetails
	CupStock            string
	WasteNote           string
	StockInfo           string
	Issue               *model.IssueInfo
	Waste               *model.WasteInfo
	Slots               []model.Slot
	BeforePhotos        []string
	AfterPhotos         []string
	IssuePhotos         []string
}

// Create validates and persists a new report. Validation failures block the
// submission entirely; there is no partial write.
func (s *ReportService) Create(ctx context.Context, input CreateReportInput, principal model.Principal) (*model.Report, error) {
	if !principal.Can(model.CapCreateReports) {
		return nil, ErrPermissionDenied
	}

	location := NormalizeLocation(input.Location)
	serial := strings.TrimSpace(input.MachineSerialNumber)

	if location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if !serialNumberPattern.MatchString(serial) {
		return nil, fmt.Errorf("%w: machine serial number must be exactly 10 digits", ErrInvalidInput)
	}
	if len(input.BeforePhotos) == 0 {
		return nil, fmt.Errorf("%w: at least one before photo is required", ErrInvalidInput)
	}
	if len(input.AfterPhotos) == 0 {
		return nil, fmt.Errorf("%w: at least one after photo is required", ErrInvalidInput)
	}

	reportType := input.ReportType
	switch reportType {
	case "", model.ReportTypeIceCream:
		reportType = model.ReportTypeIceCream
	case model.ReportTypeFridge:
	default:
		return nil, fmt.Errorf("%w: unknown report type %q", ErrInvalidInput, input.ReportType)
	}

	status := input.Status
	if status == "" {
		status = model.ReportStatusCompleted
	}
	if !s.validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	slots, err := prunedSlots(input.Slots, reportType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &model.Report{
		ID:                  uuid.NewString(),
		Title:               buildTitle(location, serial, now),
		ReportType:          reportType,
		Status:              status,
		Location:            location,
		MachineSerialNumber: serial,
		Notes:               strings.TrimSpace(input.Notes),
		UserID:              principal.UserID,
		UserName:            principal.Name,
		CreatedAt:           now,
		UpdatedAt:           now,
		EquipmentChecklist:  input.EquipmentChecklist,
		CleaningChecklist:   input.CleaningChecklist,
		FillingDetails:      input.FillingDetails,
		CupStock:            input.CupStock,
		WasteNote:           input.WasteNote,
		StockInfo:           input.StockInfo,
		Issue:               input.Issue,
		Waste:               input.Waste,
		Slots:               slots,
		BeforePhotos:        input.BeforePhotos,
		AfterPhotos:         input.AfterPhotos,
		IssuePhotos:         input.IssuePhotos,
	}

	if err := s.store.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type ListResult struct {
	Items      []model.Report
	TotalCount int
}

// List fetches the reports the principal may see and runs the view pipeline
// over them. Routemen only ever see their own submissions.
func (s *ReportService) List(ctx context.Context, query listview.ReportQuery, principal model.Principal) (*ListResult, error) {
	reports, err := s.visibleReports(ctx, principal)
	if err != nil {
		return nil, err
	}

	if query.PageSize <= 0 {
		query.PageSize = s.cfg.Reports.DefaultPageSize
	}
	if query.PageSize > s.cfg.Reports.MaxPageSize {
		query.PageSize = s.cfg.Reports.MaxPageSize
	}
	if query.SortKey == "" {
		query.SortKey = listview.ReportSortCreatedAt
		query.Direction = listview.Desc
	}

	items, total := listview.ApplyReports(reports, query)
	return &ListResult{Items: items, TotalCount: total}, nil
}

func (s *ReportService) Get(ctx context.Context, id string, principal model.Principal) (*model.Report, error) {
	report, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.Can(model.CapViewAllReports) && report.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return report, nil
}

// ResolveIssue toggles the only admin-mutable fields on a report.
func (s *ReportService) ResolveIssue(ctx context.Context, id string, resolved bool, principal model.Principal) error {
	if !principal.Can(model.CapResolveIssues) {
		return ErrPermissionDenied
	}

	report, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if report.Issue == nil || !report.Issue.HasIssue {
		return fmt.Errorf("%w: report has no issue record", ErrInvalidInput)
	}

	now := time.Now().UTC()
	issue := *report.Issue
	issue.Resolved = resolved
	if resolved {
		issue.ResolvedDate = &now
	} else {
		issue.ResolvedDate = nil
	}

	if err := s.store.UpdateIssue(ctx, id, &issue, now); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete is a hard delete. Photos live inline in the record, so nothing else
// needs invalidating.
func (s *ReportService) Delete(ctx context.Context, id string, principal model.Principal) error {
	if !principal.Can(model.CapDeleteReports) {
		return ErrPermissionDenied
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportCSV serializes every currently-filtered record, not just the visible
// page.
func (s *ReportService) ExportCSV(ctx context.Context, query listview.ReportQuery, principal model.Principal) (*ExportResult, error) {
	reports, err := s.filteredForExport(ctx, query, principal)
	if err != nil {
		return nil, err
	}
	content, err := s.csv.Generate(reports)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: exportFileName("csv"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportExcel(ctx context.Context, query listview.ReportQuery, principal model.Principal) (*ExportResult, error) {
	reports, err := s.filteredForExport(ctx, query, principal)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(reports)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: exportFileName("xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context, id string, principal model.Principal) (*ExportResult, error) {
	if !principal.Can(model.CapExportReports) {
		return nil, ErrPermissionDenied
	}
	report, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	name := report.Title
	if name == "" {
		name = report.ID
	}
	return &ExportResult{
		FileName: fmt.Sprintf("report-%s.pdf", name),
		Content:  content,
	}, nil
}

func (s *ReportService) visibleReports(ctx context.Context, principal model.Principal) ([]model.Report, error) {
	switch {
	case principal.Can(model.CapViewAllReports):
		return s.store.List(ctx)
	case principal.Can(model.CapViewOwnReports):
		return s.store.ListByUser(ctx, principal.UserID)
	default:
		return nil, ErrPermissionDenied
	}
}

func (s *ReportService) filteredForExport(ctx context.Context, query listview.ReportQuery, principal model.Principal) ([]model.Report, error) {
	if !principal.Can(model.CapExportReports) {
		return nil, ErrPermissionDenied
	}
	reports, err := s.visibleReports(ctx, principal)
	if err != nil {
		return nil, err
	}
	if query.SortKey == "" {
		query.SortKey = listview.ReportSortCreatedAt
		query.Direction = listview.Desc
	}
	query.Page = 0
	query.PageSize = len(reports)
	if query.PageSize == 0 {
		query.PageSize = 1
	}
	filtered, _ := listview.ApplyReports(reports, query)
	return filtered, nil
}

func (s *ReportService) validStatus(status model.ReportStatus) bool {
	for _, valid := range s.cfg.Reports.ValidStatuses {
		if string(status) == valid {
			return true
		}
	}
	return false
}

func prunedSlots(slots []model.Slot, reportType model.ReportType) ([]model.Slot, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	if reportType != model.ReportTypeFridge {
		return nil, fmt.Errorf("%w: slots are only valid on fridge reports", ErrInvalidInput)
	}
	kept := make([]model.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.ID < 1 || slot.ID > model.MaxSlots {
			return nil, fmt.Errorf("%w: slot number %d is out of range 1-%d", ErrInvalidInput, slot.ID, model.MaxSlots)
		}
		if slot.Empty() {
			continue
		}
		kept = append(kept, slot)
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return kept, nil
}

func buildTitle(location, serial string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", location, serial, at.Format("20060102150405"))
}

func exportFileName(extension string) string {
	return fmt.Sprintf("reports_%s.%s", time.Now().UTC().Format("2006-01-02"), extension)
}

var turkishReplacer = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ü", "u", "Ü", "U",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ç", "c", "Ç", "C",
)

// NormalizeLocation transliterates Turkish characters, drops everything else
// outside [a-zA-Z0-9 _-] and collapses runs of whitespace. Locations are
// normalized once at creation and stored ASCII-safe.
func NormalizeLocation(location string) string {
	cleaned := turkishReplacer.Replace(location)

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n':
			b.WriteRune(' ')
		case r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
