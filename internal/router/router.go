package router

import (
	"gelato-pos/internal/advisor"
	"gelato-pos/internal/config"
	"gelato-pos/internal/handler"
	"gelato-pos/internal/middleware"
	"gelato-pos/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires every API route.
func SetupRouter(cfg *config.Config, db *gorm.DB, st *store.Store, adv *advisor.Client) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	// login is the only open route
	authHandler := handler.NewAuthHandler(cfg)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.AuditMiddleware(db),
	)

	stockHandler := handler.NewStockHandler(st)
	protected.GET("/stock", stockHandler.ListStock)
	protected.GET("/stock/low", stockHandler.ListLowStock)
	protected.POST("/stock", stockHandler.CreateStockItem)
	protected.PUT("/stock/:id", stockHandler.UpdateStockItem)
	protected.DELETE("/stock/:id", stockHandler.DeleteStockItem)

	tableHandler := handler.NewTableHandler(st)
	protected.GET("/tables", tableHandler.ListTables)
	protected.POST("/tables/:id/order", tableHandler.AddOrderLine)
	protected.DELETE("/tables/:id/order/:lineId", tableHandler.RemoveOrderLine)
	protected.POST("/tables/:id/checkout", tableHandler.Checkout)

	financeHandler := handler.NewFinanceHandler(st)
	protected.GET("/transactions", financeHandler.ListTransactions)
	protected.POST("/transactions", financeHandler.CreateTransaction)
	protected.POST("/sales/quick", financeHandler.QuickSale)

	dashboardHandler := handler.NewDashboardHandler(st)
	protected.GET("/dashboard", dashboardHandler.Summary)

	exportHandler := handler.NewExportHandler(st)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	advisorHandler := handler.NewAdvisorHandler(st, adv)
	protected.GET("/insights", advisorHandler.ListInsights)

	settingsHandler := handler.NewSettingsHandler(st)
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	backupHandler := handler.NewBackupHandler(st)
	protected.GET("/backup/export", backupHandler.ExportBackup)
	protected.POST("/backup/import", backupHandler.ImportBackup)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
