package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrebkr/vendcare/internal/http/middleware"
	"github.com/emrebkr/vendcare/internal/listview"
	"github.com/emrebkr/vendcare/internal/model"
	"github.com/emrebkr/vendcare/internal/service"
)

type createReportRequest struct {
	ReportType          string                `json:"reportType"`
	Status              string                `json:"status"`
	Location            string                `json:"location" binding:"required"`
	MachineSerialNumber string                `json:"machineSerialNumber" binding:"required"`
	Notes               string                `json:"notes"`
	EquipmentChecklist  []model.ChecklistItem `json:"equipmentChecklist"`
	CleaningChecklist   []model.ChecklistItem `json:"cleaningChecklist"`
	FillingDetails      *model.FillingDetails `json:"fillingDetails"`
	CupStock            string                `json:"cupStock"`
	WasteNote           string                `json:"waste"`
	StockInfo           string                `json:"stockInfo"`
	Issue               *model.IssueInfo      `json:"issue"`
	Waste               *model.WasteInfo      `json:"wasteRecord"`
	Slots               []model.Slot          `json:"slots"`
	BeforePhotos        []string              `json:"beforePhotos"`
	AfterPhotos         []string              `json:"afterPhotos"`
	IssuePhotos         []string              `json:"issuePhotos"`
}

func (h *Handler) createReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.Create(c.Request.Context(), service.CreateReportInput{
		ReportType:          model.ReportType(req.ReportType),
		Status:              model.ReportStatus(req.Status),
		Location:            req.Location,
		MachineSerialNumber: req.MachineSerialNumber,
		Notes:               req.Notes,
		EquipmentChecklist:  req.EquipmentChecklist,
		CleaningChecklist:   req.CleaningChecklist,
		FillingDetails:      req.FillingDetails,
		CupStock:            req.CupStock,
		WasteNote:           req.WasteNote,
		StockInfo:           req.StockInfo,
		Issue:               req.Issue,
		Waste:               req.Waste,
		Slots:               req.Slots,
		BeforePhotos:        req.BeforePhotos,
		AfterPhotos:         req.AfterPhotos,
		IssuePhotos:         req.IssuePhotos,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) listReports(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	query, err := reportQueryFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}

	result, err := h.reports.List(c.Request.Context(), query, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"totalCount": result.TotalCount,
	})
}

func (h *Handler) getReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	report, err := h.reports.Get(c.Request.Context(), c.Param("id"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type resolveIssueRequest struct {
	Resolved *bool `json:"resolved" binding:"required"`
}

func (h *Handler) resolveIssue(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req resolveIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reports.ResolveIssue(c.Request.Context(), c.Param("id"), *req.Resolved, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) deleteReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	if err := h.reports.Delete(c.Request.Context(), c.Param("id"), principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) exportReportsCSV(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	query, err := reportQueryFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}

	result, err := h.reports.ExportCSV(c.Request.Context(), query, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Content)
}

func (h *Handler) exportReportsExcel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	query, err := reportQueryFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}

	result, err := h.reports.ExportExcel(c.Request.Context(), query, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxMIME, result.Content)
}

func (h *Handler) exportReportPDF(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	result, err := h.reports.ExportPDF(c.Request.Context(), c.Param("id"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func reportQueryFromRequest(c *gin.Context) (listview.ReportQuery, error) {
	query := listview.ReportQuery{
		Type:         c.Query("type"),
		Location:     c.Query("location"),
		SerialNumber: c.Query("serial"),
		SortKey:      c.Query("sort_key"),
		Direction:    parseDirection(c.Query("sort_dir")),
		Page:         parseIntDefault(c.Query("page"), 0),
		PageSize:     parseIntDefault(c.Query("page_size"), 0),
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return listview.ReportQuery{}, err
		}
		query.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return listview.ReportQuery{}, err
		}
		query.DateTo = &to
	}
	return query, nil
}
