package model

import "time"

// Commodity is a catalog product entry keyed by a supplier-assigned code.
type Commodity struct {
	ID            string    `json:"id"`
	CommodityCode string    `json:"commodityCode"`
	ProductName   string    `json:"productName"`
	UnitPrice     string    `json:"unitPrice"`
	CostPrice     string    `json:"costPrice"`
	Supplier      string    `json:"supplier"`
	Specs         string    `json:"specs"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
