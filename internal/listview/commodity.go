package listview

import (
	"strconv"
	"strings"

	"github.com/emrebkr/vendcare/internal/model"
)

// Commodity sort keys.
const (
	CommoditySortProductName = "productName"
	CommoditySortCode        = "commodityCode"
	CommoditySortSupplier    = "supplier"
	CommoditySortType        = "type"
	CommoditySortUnitPrice   = "unitPrice"
	CommoditySortCostPrice   = "costPrice"
)

// CommodityQuery is the catalog view configuration. Search matches any of
// product name, commodity code, supplier and type; the per-field filters are
// independent and ANDed. All matching is case-insensitive substring.
type CommodityQuery struct {
	Search        string
	Supplier      string
	Type          string
	ProductName   string
	CommodityCode string
	SortKey       string
	Direction     Direction
	Page          int
	PageSize      int
}

// ApplyCommodities runs the same engine as the report table over the
// commodity catalog. Price keys compare numerically, with non-numeric
// values treated as zero.
func ApplyCommodities(items []model.Commodity, q CommodityQuery) ([]model.Commodity, int) {
	var predicates []func(model.Commodity) bool

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		predicates = append(predicates, func(c model.Commodity) bool {
			return containsFold(c.ProductName, needle) ||
				containsFold(c.CommodityCode, needle) ||
				containsFold(c.Supplier, needle) ||
				containsFold(c.Type, needle)
		})
	}
	for _, field := range []struct {
		needle string
		value  func(model.Commodity) string
	}{
		{q.Supplier, func(c model.Commodity) string { return c.Supplier }},
		{q.Type, func(c model.Commodity) string { return c.Type }},
		{q.ProductName, func(c model.Commodity) string { return c.ProductName }},
		{q.CommodityCode, func(c model.Commodity) string { return c.CommodityCode }},
	} {
		if field.needle == "" {
			continue
		}
		needle := strings.ToLower(field.needle)
		value := field.value
		predicates = append(predicates, func(c model.Commodity) bool {
			return containsFold(value(c), needle)
		})
	}

	return Apply(items, Query[model.Commodity]{
		Predicates: predicates,
		Compare:    commodityCompare(q.SortKey),
		Direction:  q.Direction,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
}

func commodityCompare(key string) func(a, b model.Commodity) int {
	switch key {
	case CommoditySortProductName:
		return func(a, b model.Commodity) int { return compareFold(a.ProductName, b.ProductName) }
	case CommoditySortCode:
		return func(a, b model.Commodity) int { return compareFold(a.CommodityCode, b.CommodityCode) }
	case CommoditySortSupplier:
		return func(a, b model.Commodity) int { return compareFold(a.Supplier, b.Supplier) }
	case CommoditySortType:
		return func(a, b model.Commodity) int { return compareFold(a.Type, b.Type) }
	case CommoditySortUnitPrice:
		return func(a, b model.Commodity) int { return compareNumeric(a.UnitPrice, b.UnitPrice) }
	case CommoditySortCostPrice:
		return func(a, b model.Commodity) int { return compareNumeric(a.CostPrice, b.CostPrice) }
	default:
		return nil
	}
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func compareNumeric(a, b string) int {
	av := parsePrice(a)
	bv := parsePrice(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func parsePrice(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
