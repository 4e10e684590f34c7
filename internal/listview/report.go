package listview

import (
	"strings"
	"time"

	"github.com/emrebkr/vendcare/internal/model"
)

// ReportTypeFilter values. All passes everything; IceCream also matches
// records with no stored type.
const (
	TypeAll      = "all"
	TypeIceCream = string(model.ReportTypeIceCream)
	TypeFridge   = string(model.ReportTypeFridge)
)

// Report sort keys.
const (
	ReportSortCreatedAt  = "createdAt"
	ReportSortLocation   = "location"
	ReportSortSerial     = "machineSerialNumber"
	ReportSortUserName   = "userName"
	ReportSortStatus     = "status"
	ReportSortReportType = "reportType"
)

// ReportQuery is the filter/sort/page configuration for the report table.
// Location matches case-insensitively; SerialNumber matches case-sensitively.
// The asymmetry is inherited behavior, kept deliberately (see DESIGN.md).
type ReportQuery struct {
	Type         string
	DateFrom     *time.Time // inclusive lower bound on CreatedAt
	DateTo       *time.Time // inclusive, extended to the end of that calendar day
	Location     string
	SerialNumber string
	SortKey      string
	Direction    Direction
	Page         int
	PageSize     int
}

// ApplyReports runs the view pipeline over reports: type filter, date range,
// location substring, serial substring, stable sort, page slice.
func ApplyReports(reports []model.Report, q ReportQuery) ([]model.Report, int) {
	var predicates []func(model.Report) bool

	switch q.Type {
	case TypeIceCream:
		predicates = append(predicates, func(r model.Report) bool {
			return r.EffectiveType() == model.ReportTypeIceCream
		})
	case TypeFridge:
		predicates = append(predicates, func(r model.Report) bool {
			return r.ReportType == model.ReportTypeFridge
		})
	}

	if q.DateFrom != nil {
		from := *q.DateFrom
		predicates = append(predicates, func(r model.Report) bool {
			return !r.CreatedAt.Before(from)
		})
	}
	if q.DateTo != nil {
		to := endOfDay(*q.DateTo)
		predicates = append(predicates, func(r model.Report) bool {
			return !r.CreatedAt.After(to)
		})
	}
	if q.Location != "" {
		needle := strings.ToLower(q.Location)
		predicates = append(predicates, func(r model.Report) bool {
			return strings.Contains(strings.ToLower(r.Location), needle)
		})
	}
	if q.SerialNumber != "" {
		needle := q.SerialNumber
		predicates = append(predicates, func(r model.Report) bool {
			return strings.Contains(r.MachineSerialNumber, needle)
		})
	}

	return Apply(reports, Query[model.Report]{
		Predicates: predicates,
		Compare:    reportCompare(q.SortKey),
		Direction:  q.Direction,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
}

func reportCompare(key string) func(a, b model.Report) int {
	switch key {
	case ReportSortCreatedAt:
		return func(a, b model.Report) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case ReportSortLocation:
		return func(a, b model.Report) int {
			return compareFold(a.Location, b.Location)
		}
	case ReportSortSerial:
		return func(a, b model.Report) int {
			return compareFold(a.MachineSerialNumber, b.MachineSerialNumber)
		}
	case ReportSortUserName:
		return func(a, b model.Report) int {
			return compareFold(a.UserName, b.UserName)
		}
	case ReportSortStatus:
		return func(a, b model.Report) int {
			return compareFold(string(a.Status), string(b.Status))
		}
	case ReportSortReportType:
		return func(a, b model.Report) int {
			return compareFold(string(a.EffectiveType()), string(b.EffectiveType()))
		}
	default:
		return nil
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
