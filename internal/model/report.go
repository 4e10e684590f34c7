package model

import (
	"strconv"
	"time"
)

type ReportType string

const (
	ReportTypeIceCream ReportType = "iceCream"
	ReportTypeFridge   ReportType = "fridge"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusCancelled ReportStatus = "cancelled"
	ReportStatusIssue     ReportStatus = "issue"
	ReportStatusWaste     ReportStatus = "waste"
)

// MaxSlots is the number of addressable compartments in a fridge machine.
const MaxSlots = 58

type ChecklistItem struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type BaseFill struct {
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	UnitType string `json:"unitType"`
}

type FillingItem struct {
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type FillingDetails struct {
	IceCreamBase BaseFill      `json:"iceCreamBase"`
	Toppings     []FillingItem `json:"toppings"`
	Sauces       []FillingItem `json:"sauces"`
}

type IssueInfo struct {
	HasIssue     bool       `json:"hasIssue"`
	Description  string     `json:"issueDescription"`
	Date         *time.Time `json:"issueDate,omitempty"`
	Resolved     bool       `json:"issueResolved"`
	ResolvedDate *time.Time `json:"issueResolvedDate,omitempty"`
}

type WasteItem struct {
	ProductName string `json:"productName"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Reason      string `json:"reason"`
}

type WasteInfo struct {
	HasWaste bool        `json:"hasWaste"`
	Items    []WasteItem `json:"items"`
	Date     *time.Time  `json:"wasteDate,omitempty"`
}

// Slot is one fridge compartment. Only slots with at least one non-empty
// field are persisted.
type Slot struct {
	ID          int    `json:"id"`
	Commodity   string `json:"commodity"`
	Quantity    string `json:"quantity"`
	ExpiryDate  string `json:"expiryDate"`
	BatchNumber string `json:"batchNumber"`
}

func (s Slot) Empty() bool {
	return s.Commodity == "" && s.Quantity == "" && s.ExpiryDate == "" && s.BatchNumber == ""
}

// Report is one maintenance visit record. Immutable after creation except
// for issue resolution, which only an admin may toggle.
type Report struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	ReportType          ReportType      `json:"reportType,omitempty"`
	Status              ReportStatus    `json:"status"`
	Location            string          `json:"location"`
	MachineSerialNumber string          `json:"machineSerialNumber"`
	Notes               string          `json:"notes"`
	UserID              string          `json:"userId"`
	UserName            string          `json:"userName"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	EquipmentChecklist  []ChecklistItem `json:"equipmentChecklist,omitempty"`
	CleaningChecklist   []ChecklistItem `json:"cleaningChecklist,omitempty"`
	FillingDetails      *FillingDetails `json:"fillingDetails,omitempty"`
	CupStock            string          `json:"cupStock,omitempty"`
	WasteNote           string          `json:"waste,omitempty"`
	StockInfo           string          `json:"stockInfo,omitempty"`
	Issue               *IssueInfo      `json:"issue,omitempty"`
	Waste               *WasteInfo      `json:"wasteRecord,omitempty"`
	Slots               []Slot          `json:"slots,omitempty"`
	BeforePhotos        []string        `json:"beforePhotos"`
	AfterPhotos         []string        `json:"afterPhotos"`
	IssuePhotos         []string        `json:"issuePhotos,omitempty"`
}

// EffectiveType treats a missing report type as iceCream, matching records
// written before fridge reports existed.
func (r Report) EffectiveType() ReportType {
	if r.ReportType == "" {
		return ReportTypeIceCream
	}
	return r.ReportType
}

// FilledSlotCount is always derived from Slots, never stored.
func (r Report) FilledSlotCount() int {
	count := 0
	for _, slot := range r.Slots {
		if !slot.Empty() {
			count++
		}
	}
	return count
}

// TotalSlotQuantity sums slot quantities, treating non-numeric values as zero.
func (r Report) TotalSlotQuantity() float64 {
	total := 0.0
	for _, slot := range r.Slots {
		if value, err := strconv.ParseFloat(slot.Quantity, 64); err == nil {
			total += value
		}
	}
	return total
}

// CompletedCount reports how many checklist items are done.
func CompletedCount(items []ChecklistItem) int {
	count := 0
	for _, item := range items {
		if item.Completed {
			count++
		}
	}
	return count
}
