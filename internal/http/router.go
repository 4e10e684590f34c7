package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.POST("/auth/login", handler.login)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/reports", handler.listReports)
	protected.POST("/reports", handler.createReport)
	protected.GET("/reports/export/csv", handler.exportReportsCSV)
	protected.GET("/reports/export/xlsx", handler.exportReportsExcel)
	protected.GET("/reports/:id", handler.getReport)
	protected.GET("/reports/:id/export/pdf", handler.exportReportPDF)
	protected.PATCH("/reports/:id/issue", handler.resolveIssue)
	protected.DELETE("/reports/:id", handler.deleteReport)

	protected.POST("/photos", handler.compressPhotos)

	protected.GET("/users", handler.listUsers)
	protected.POST("/users", handler.createUser)
	protected.PUT("/users/:id", handler.updateUser)
	protected.PATCH("/users/:id/active", handler.setUserActive)
	protected.DELETE("/users/:id", handler.deleteUser)

	protected.GET("/commodities", handler.listCommodities)
	protected.POST("/commodities", handler.createCommodity)
	protected.POST("/commodities/import", handler.importCommodities)
	protected.GET("/commodities/:id", handler.getCommodity)
	protected.PUT("/commodities/:id", handler.updateCommodity)
	protected.DELETE("/commodities/:id", handler.deleteCommodity)

	return router
}
