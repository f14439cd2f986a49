package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/auth"
	"github.com/jcastellr/almacen-api/internal/application/order"
	"github.com/jcastellr/almacen-api/internal/application/purchase"
	"github.com/jcastellr/almacen-api/internal/application/report"
	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IntakeUC     *stock.IntakeUseCase
	AdjustmentUC *stock.AdjustmentUseCase
	OrderUC      *order.UseCase
	AuthUC       *auth.UseCase
	StaffUC      *auth.StaffUseCase
	OrgUC        *auth.OrgUseCase
	PurchaseUC   *purchase.UseCase
	ReportUC     *report.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Control de inventario: roles que operan el almacén
	keeper := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStockController)
	// Administración: solo admin
	admin := RequireRole(entity.RoleAdmin)

	// Items (protegido; registrar solo almacenistas)
	stockHandler := NewStockHandler(deps.IntakeUC)
	items := protected.Group("/items")
	items.Post("/", keeper, stockHandler.CreateItem)
	items.Get("/", stockHandler.ListItems)
	items.Get("/:barcode", stockHandler.GetItem)

	// Lotes de entrada (almacenistas)
	stockGroup := protected.Group("/stock", keeper)
	stockGroup.Post("/", stockHandler.AddStock)
	stockGroup.Put("/:id", stockHandler.UpdateStock)
	stockGroup.Delete("/:id", stockHandler.RemoveStock)

	// Ajustes manuales (almacenistas)
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments := protected.Group("/adjustments", keeper)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Put("/:id", adjustmentHandler.Update)
	adjustments.Delete("/:id", adjustmentHandler.Delete)

	// Órdenes de material (cualquier rol autenticado)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/availability/:barcode", orderHandler.CheckAvailability)
	orders.Get("/:id", orderHandler.Get)

	// Órdenes de compra (almacenistas)
	poHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	pos := protected.Group("/purchase-orders", keeper)
	pos.Post("/", poHandler.Create)
	pos.Get("/", poHandler.List)
	pos.Get("/:id", poHandler.Get)
	pos.Put("/:id", poHandler.Update)
	pos.Delete("/:id", poHandler.Delete)
	pos.Put("/:id/state", RequireRole(entity.RoleAdmin, entity.RoleManager), poHandler.UpdateState)
	pos.Post("/:id/items", poHandler.AddItem)
	pos.Put("/:id/items/:itemId", poHandler.UpdateItem)
	pos.Delete("/:id/items/:itemId", poHandler.DeleteItem)

	// Personal y organización (solo admin)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff := protected.Group("/staff", admin)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.Get)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	orgHandler := NewOrgHandler(deps.OrgUC)
	departments := protected.Group("/departments", admin)
	departments.Post("/", orgHandler.CreateDepartment)
	departments.Get("/", orgHandler.ListDepartments)
	departments.Put("/:id", orgHandler.UpdateDepartment)
	departments.Delete("/:id", orgHandler.DeleteDepartment)

	jobs := protected.Group("/jobs", admin)
	jobs.Post("/", orgHandler.CreateJob)
	jobs.Get("/", orgHandler.ListJobs)
	jobs.Delete("/:id", orgHandler.DeleteJob)

	recipients := protected.Group("/recipients", admin)
	recipients.Post("/", orgHandler.AddRecipient)
	recipients.Get("/", orgHandler.ListRecipients)
	recipients.Delete("/:id", orgHandler.RemoveRecipient)

	// Reportes (admin y manager)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleManager))
	reports.Get("/department-activity", reportHandler.DepartmentActivity)
	reports.Get("/running-stock", reportHandler.RunningStock)
	reports.Get("/running-stock/pdf", reportHandler.RunningStockPDF)
}
