package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrebkr/vendcare/internal/http/middleware"
	"github.com/emrebkr/vendcare/internal/listview"
	"github.com/emrebkr/vendcare/internal/service"
)

type commodityRequest struct {
	CommodityCode string `json:"commodityCode" binding:"required"`
	ProductName   string `json:"productName" binding:"required"`
	UnitPrice     string `json:"unitPrice"`
	CostPrice     string `json:"costPrice"`
	Supplier      string `json:"supplier"`
	Specs         string `json:"specs"`
	Type          string `json:"type"`
	Description   string `json:"description"`
}

func (r commodityRequest) toInput() service.CommodityInput {
	return service.CommodityInput{
		CommodityCode: r.CommodityCode,
		ProductName:   r.ProductName,
		UnitPrice:     r.UnitPrice,
		CostPrice:     r.CostPrice,
		Supplier:      r.Supplier,
		Specs:         r.Specs,
		Type:          r.Type,
		Description:   r.Description,
	}
}

func (h *Handler) createCommodity(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req commodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commodity, err := h.commodities.Create(c.Request.Context(), req.toInput(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commodity)
}

func (h *Handler) listCommodities(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	query := listview.CommodityQuery{
		Search:        c.Query("search"),
		Supplier:      c.Query("supplier"),
		Type:          c.Query("type"),
		ProductName:   c.Query("product_name"),
		CommodityCode: c.Query("commodity_code"),
		SortKey:       c.Query("sort_key"),
		Direction:     parseDirection(c.Query("sort_dir")),
		Page:          parseIntDefault(c.Query("page"), 0),
		PageSize:      parseIntDefault(c.Query("page_size"), 0),
	}

	result, err := h.commodities.List(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"totalCount": result.TotalCount,
	})
}

func (h *Handler) getCommodity(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	commodity, err := h.commodities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, commodity)
}

func (h *Handler) updateCommodity(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req commodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commodity, err := h.commodities.Update(c.Request.Context(), c.Param("id"), req.toInput(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, commodity)
}

func (h *Handler) deleteCommodity(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	if err := h.commodities.Delete(c.Request.Context(), c.Param("id"), principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type importItem struct {
	CommodityCode string `json:"commodityCode"`
	ProductName   string `json:"productName"`
	UnitPrice     string `json:"unitPrice"`
	CostPrice     string `json:"costPrice"`
	Supplier      string `json:"supplier"`
	Specs         string `json:"specs"`
	Type          string `json:"type"`
	Description   string `json:"description"`
}

type importCommoditiesRequest struct {
	Items []importItem `json:"items"`
}

// importCommodities is deliberately lenient per item: validation happens in
// the service so one bad row cannot reject the whole batch.
func (h *Handler) importCommodities(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req importCommoditiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}

	items := make([]service.CommodityInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CommodityInput{
			CommodityCode: item.CommodityCode,
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice,
			CostPrice:     item.CostPrice,
			Supplier:      item.Supplier,
			Specs:         item.Specs,
			Type:          item.Type,
			Description:   item.Description,
		})
	}

	results, err := h.commodities.Import(c.Request.Context(), items, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	imported := 0
	for _, result := range results {
		if result.Imported {
			imported++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"failed":   len(results) - imported,
		"results":  results,
	})
}
