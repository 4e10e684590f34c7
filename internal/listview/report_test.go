package listview

import (
	"testing"
	"time"

	"github.com/emrebkr/vendcare/internal/model"
)

func date(day int, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

func sampleReports() []model.Report {
	return []model.Report{
		{
			ID:                  "r1",
			Location:            "Istanbul Kadikoy",
			MachineSerialNumber: "2403290001",
			UserName:            "Mehmet",
			ReportType:          model.ReportTypeIceCream,
			Status:              model.ReportStatusCompleted,
			CreatedAt:           date(10, 9),
		},
		{
			ID:                  "r2",
			Location:            "Ankara Cankaya",
			MachineSerialNumber: "2403290002",
			UserName:            "Ayse",
			ReportType:          model.ReportTypeFridge,
			Status:              model.ReportStatusPending,
			CreatedAt:           date(12, 14),
		},
		{
			ID:                  "r3",
			Location:            "Izmir Bornova",
			MachineSerialNumber: "2403290003",
			UserName:            "Fatma",
			ReportType:          "", // legacy record, counts as ice cream
			Status:              model.ReportStatusIssue,
			CreatedAt:           date(15, 11),
		},
	}
}

func reportIDs(items []model.Report) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyReports_FridgeFilter(t *testing.T) {
	page, total := ApplyReports(sampleReports(), ReportQuery{
		Type:      TypeFridge,
		SortKey:   ReportSortCreatedAt,
		Direction: Desc,
		Page:      0,
		PageSize:  10,
	})

	if total != 1 {
		t.Fatalf("expected totalCount 1, got %d", total)
	}
	if !equalIDs(reportIDs(page), []string{"r2"}) {
		t.Errorf("expected only the fridge report, got %v", reportIDs(page))
	}
}

func TestApplyReports_IceCreamIncludesMissingType(t *testing.T) {
	_, total := ApplyReports(sampleReports(), ReportQuery{Type: TypeIceCream, PageSize: 10})
	if total != 2 {
		t.Errorf("records without a stored type must count as ice cream: expected 2, got %d", total)
	}
}

func TestApplyReports_TypeAllPassesEverything(t *testing.T) {
	for _, typ := range []string{TypeAll, ""} {
		_, total := ApplyReports(sampleReports(), ReportQuery{Type: typ, PageSize: 10})
		if total != 3 {
			t.Errorf("type %q: expected 3, got %d", typ, total)
		}
	}
}

func TestApplyReports_DateRange(t *testing.T) {
	from := date(11, 0)
	to := date(12, 0) // report r2 was created at 14:00 on the 12th

	page, total := ApplyReports(sampleReports(), ReportQuery{
		DateFrom: &from,
		DateTo:   &to,
		PageSize: 10,
	})

	// DateTo covers the whole calendar day, so the 14:00 record still matches.
	if total != 1 || !equalIDs(reportIDs(page), []string{"r2"}) {
		t.Errorf("expected only r2, got %v (total %d)", reportIDs(page), total)
	}
}

func TestApplyReports_LocationMatchIgnoresCase(t *testing.T) {
	_, total := ApplyReports(sampleReports(), ReportQuery{Location: "ISTANBUL", PageSize: 10})
	if total != 1 {
		t.Errorf("expected 1 match for case-insensitive location, got %d", total)
	}
}

func TestApplyReports_SerialMatchIsCaseSensitiveSubstring(t *testing.T) {
	reports := []model.Report{{ID: "x", MachineSerialNumber: "AB12345678"}}

	if _, total := ApplyReports(reports, ReportQuery{SerialNumber: "AB12", PageSize: 10}); total != 1 {
		t.Errorf("expected substring match, got %d", total)
	}
	if _, total := ApplyReports(reports, ReportQuery{SerialNumber: "ab12", PageSize: 10}); total != 0 {
		t.Errorf("serial matching must be case sensitive, got %d matches", total)
	}
}

func TestApplyReports_SortByLocationAsc(t *testing.T) {
	page, _ := ApplyReports(sampleReports(), ReportQuery{
		SortKey:   ReportSortLocation,
		Direction: Asc,
		PageSize:  10,
	})
	if !equalIDs(reportIDs(page), []string{"r2", "r1", "r3"}) {
		t.Errorf("expected Ankara, Istanbul, Izmir order, got %v", reportIDs(page))
	}
}

func TestApplyReports_SortByCreatedAtDesc(t *testing.T) {
	page, _ := ApplyReports(sampleReports(), ReportQuery{
		SortKey:   ReportSortCreatedAt,
		Direction: Desc,
		PageSize:  10,
	})
	if !equalIDs(reportIDs(page), []string{"r3", "r2", "r1"}) {
		t.Errorf("expected newest first, got %v", reportIDs(page))
	}
}

func TestApplyReports_UnknownSortKeyKeepsInputOrder(t *testing.T) {
	page, _ := ApplyReports(sampleReports(), ReportQuery{SortKey: "bogus", PageSize: 10})
	if !equalIDs(reportIDs(page), []string{"r1", "r2", "r3"}) {
		t.Errorf("expected input order, got %v", reportIDs(page))
	}
}

func TestApplyReports_CombinedFilterSortPage(t *testing.T) {
	reports := sampleReports()
	reports = append(reports, model.Report{
		ID:                  "r4",
		Location:            "Ankara Kecioren",
		MachineSerialNumber: "2403290004",
		ReportType:          model.ReportTypeFridge,
		Status:              model.ReportStatusPending,
		CreatedAt:           date(20, 8),
	})

	page, total := ApplyReports(reports, ReportQuery{
		Type:      TypeFridge,
		Location:  "ankara",
		SortKey:   ReportSortCreatedAt,
		Direction: Desc,
		Page:      1,
		PageSize:  1,
	})

	if total != 2 {
		t.Fatalf("expected 2 fridge reports in Ankara, got %d", total)
	}
	if !equalIDs(reportIDs(page), []string{"r2"}) {
		t.Errorf("page 1 of size 1 should hold the older report, got %v", reportIDs(page))
	}
}
