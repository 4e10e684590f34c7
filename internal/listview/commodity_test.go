package listview

import (
	"testing"

	"github.com/emrebkr/vendcare/internal/model"
)

func sampleCommodities() []model.Commodity {
	return []model.Commodity{
		{ID: "c1", CommodityCode: "VC-001", ProductName: "Vanilla Cone", Supplier: "Arctic Foods", Type: "iceCream", UnitPrice: "12.50", CostPrice: "7.00"},
		{ID: "c2", CommodityCode: "CH-014", ProductName: "Chocolate Bar", Supplier: "SweetCo", Type: "snack", UnitPrice: "8", CostPrice: "4.20"},
		{ID: "c3", CommodityCode: "SO-220", ProductName: "Orange Soda", Supplier: "Arctic Foods", Type: "drink", UnitPrice: "9.90", CostPrice: "n/a"},
	}
}

func commodityIDs(items []model.Commodity) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestApplyCommodities_SearchSpansFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"product name", "soda", 1},
		{"commodity code", "ch-014", 1},
		{"supplier", "arctic", 2},
		{"type", "snack", 1},
		{"no match", "pizza", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total := ApplyCommodities(sampleCommodities(), CommodityQuery{Search: tt.search, PageSize: 10})
			if total != tt.want {
				t.Errorf("search %q: expected %d, got %d", tt.search, tt.want, total)
			}
		})
	}
}

func TestApplyCommodities_FieldFiltersAreANDed(t *testing.T) {
	_, total := ApplyCommodities(sampleCommodities(), CommodityQuery{
		Supplier: "arctic",
		Type:     "drink",
		PageSize: 10,
	})
	if total != 1 {
		t.Errorf("expected exactly the Arctic drink, got %d", total)
	}
}

func TestApplyCommodities_NumericPriceSort(t *testing.T) {
	page, _ := ApplyCommodities(sampleCommodities(), CommodityQuery{
		SortKey:   CommoditySortUnitPrice,
		Direction: Asc,
		PageSize:  10,
	})
	// "8" must sort below "12.50" numerically, not lexically.
	got := commodityIDs(page)
	want := []string{"c2", "c3", "c1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected numeric order %v, got %v", want, got)
		}
	}
}

func TestApplyCommodities_NonNumericPriceSortsAsZero(t *testing.T) {
	page, _ := ApplyCommodities(sampleCommodities(), CommodityQuery{
		SortKey:   CommoditySortCostPrice,
		Direction: Asc,
		PageSize:  10,
	})
	if page[0].ID != "c3" {
		t.Errorf("non-numeric cost price should sort first ascending, got %v", commodityIDs(page))
	}
}
